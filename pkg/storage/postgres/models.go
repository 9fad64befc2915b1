package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"relay/pkg/domain"
)

type PgReceipt struct {
	ID uuid.UUID `db:"id"`

	CustomerName string `db:"customer_name"`
	MediaPath    string `db:"media_path"`
	MediaName    string `db:"media_name"`
	SourceGroup  string `db:"source_group"`

	Forwarded bool `db:"forwarded" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgReceipt) ToDomain() *domain.Receipt {
	return &domain.Receipt{
		ID:           domain.ReceiptID(p.ID),
		CustomerName: p.CustomerName,
		MediaPath:    p.MediaPath,
		MediaName:    p.MediaName,
		SourceGroup:  p.SourceGroup,
		Forwarded:    p.Forwarded,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
		DeletedAt:    p.DeletedAt.Time,
	}
}

func (p *PgReceipt) FromDomain(r domain.Receipt) {
	*p = PgReceipt{
		ID:           uuid.UUID(r.ID),
		CustomerName: r.CustomerName,
		MediaPath:    r.MediaPath,
		MediaName:    r.MediaName,
		SourceGroup:  r.SourceGroup,
		Forwarded:    r.Forwarded,
		CreatedAt:    r.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  r.UpdatedAt,
			Valid: !r.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  r.DeletedAt,
			Valid: !r.DeletedAt.IsZero(),
		},
	}
}

func domainReceiptsToPg(receipts []domain.Receipt) []PgReceipt {
	out := make([]PgReceipt, len(receipts))
	for i := range out {
		out[i].FromDomain(receipts[i])
	}

	return out
}

func pgReceiptsToDomain(receipts []PgReceipt) []domain.Receipt {
	out := make([]domain.Receipt, 0, len(receipts))
	for i := range receipts {
		out = append(out, *receipts[i].ToDomain())
	}

	return out
}

type PgQuery struct {
	ID uuid.UUID `db:"id"`

	CustomerName string `db:"customer_name"`
	QueryGroup   string `db:"query_group"`

	MatchedReceiptID uuid.NullUUID `db:"matched_receipt_id"`
	Score            int           `db:"score"`
	Status           string        `db:"status"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgQuery) ToDomain() *domain.Query {
	var matched *domain.ReceiptID
	if p.MatchedReceiptID.Valid {
		id := domain.ReceiptID(p.MatchedReceiptID.UUID)
		matched = &id
	}

	return &domain.Query{
		ID:               domain.QueryID(p.ID),
		CustomerName:     p.CustomerName,
		QueryGroup:       p.QueryGroup,
		MatchedReceiptID: matched,
		Score:            p.Score,
		Status:           domain.QueryStatus(p.Status),
		CreatedAt:        p.CreatedAt,
	}
}

func (p *PgQuery) FromDomain(q domain.Query) {
	var matched uuid.NullUUID
	if q.MatchedReceiptID != nil {
		matched = uuid.NullUUID{UUID: uuid.UUID(*q.MatchedReceiptID), Valid: true}
	}

	*p = PgQuery{
		ID:               uuid.UUID(q.ID),
		CustomerName:     q.CustomerName,
		QueryGroup:       q.QueryGroup,
		MatchedReceiptID: matched,
		Score:            q.Score,
		Status:           string(q.Status),
		CreatedAt:        q.CreatedAt,
	}
}

func pgQueriesToDomain(queries []PgQuery) []domain.Query {
	out := make([]domain.Query, 0, len(queries))
	for i := range queries {
		out = append(out, *queries[i].ToDomain())
	}

	return out
}

type PgEvent struct {
	ID        int64           `db:"id"       goqu:"skipinsert"`
	Action    string          `db:"action"`
	Metadata  json.RawMessage `db:"metadata"`
	CreatedAt time.Time       `db:"created_at" goqu:"skipinsert"`
}

func (p *PgEvent) ToDomain() (*domain.Event, error) {
	var metadata map[string]string
	if len(p.Metadata) > 0 {
		if err := json.Unmarshal(p.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("could not unmarshal event metadata: %w", err)
		}
	}

	return &domain.Event{
		ID:        p.ID,
		Action:    p.Action,
		Metadata:  metadata,
		CreatedAt: p.CreatedAt,
	}, nil
}
