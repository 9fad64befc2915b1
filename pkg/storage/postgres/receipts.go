package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"relay/pkg/domain"
	"relay/pkg/storage"
)

const receiptsTable = "receipts"

func (p *PgSQL) StoreReceipts(ctx context.Context, receipts ...domain.Receipt) ([]domain.Receipt, error) {
	if len(receipts) == 0 {
		return nil, nil
	}

	var result []PgReceipt
	if err := p.Builder.Insert(receiptsTable).
		Rows(domainReceiptsToPg(receipts)).
		Returning(&PgReceipt{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store receipts into pg: %w", err)
	}

	return pgReceiptsToDomain(result), nil
}

// ReceiptByID returns a receipt by its ID, excluding soft-deleted rows.
func (p *PgSQL) ReceiptByID(ctx context.Context, id domain.ReceiptID) (*domain.Receipt, error) {
	var row PgReceipt
	found, err := p.Builder.From(receiptsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch receipt by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UndeliveredReceipts returns all receipts not yet forwarded, oldest first,
// so the earliest receipt wins ties during query matching.
func (p *PgSQL) UndeliveredReceipts(ctx context.Context) ([]domain.Receipt, error) {
	var rows []PgReceipt
	if err := p.Builder.From(receiptsTable).
		Where(
			goqu.I("forwarded").IsFalse(),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch undelivered receipts: %w", err)
	}

	return pgReceiptsToDomain(rows), nil
}

// MarkReceiptForwarded flips the forwarded flag and returns the updated row,
// or nil when the receipt is missing or soft-deleted.
func (p *PgSQL) MarkReceiptForwarded(ctx context.Context, id domain.ReceiptID) (*domain.Receipt, error) {
	var row PgReceipt
	found, err := p.Builder.Update(receiptsTable).
		Set(goqu.Record{
			"forwarded":  true,
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgReceipt{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not mark receipt forwarded: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Receipts returns a page of receipts created before the optional cursor,
// ordered by created_at DESC, id DESC.
func (p *PgSQL) Receipts(ctx context.Context, cursor time.Time, limit uint) (storage.ReceiptPage, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra row to know whether there is a next page
	var rows []PgReceipt
	if err := p.Builder.From(receiptsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.ReceiptPage{}, fmt.Errorf("could not fetch receipts from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	return storage.ReceiptPage{
		Receipts:   pgReceiptsToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// DeleteReceipt soft-deletes a receipt by setting deleted_at, returning the
// deleted row or nil when not found.
func (p *PgSQL) DeleteReceipt(ctx context.Context, id domain.ReceiptID) (*domain.Receipt, error) {
	var row PgReceipt
	found, err := p.Builder.Update(receiptsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgReceipt{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete receipt in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
