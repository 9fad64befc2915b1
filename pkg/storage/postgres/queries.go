package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"relay/pkg/domain"
	"relay/pkg/storage"
)

const queriesTable = "queries"

func (p *PgSQL) StoreQuery(ctx context.Context, query domain.Query) (*domain.Query, error) {
	var pgQuery PgQuery
	pgQuery.FromDomain(query)

	var result PgQuery
	found, err := p.Builder.Insert(queriesTable).
		Rows(pgQuery).
		Returning(&PgQuery{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store query into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert returned no row")
	}

	return result.ToDomain(), nil
}

// Queries returns a page of queries created before the optional cursor,
// ordered by created_at DESC, id DESC.
func (p *PgSQL) Queries(ctx context.Context, cursor time.Time, limit uint) (storage.QueryPage, error) {
	var w []goqu.Expression
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	var rows []PgQuery
	if err := p.Builder.From(queriesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.QueryPage{}, fmt.Errorf("could not fetch queries from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		nextCursor = &rows[len(rows)-1].CreatedAt
	}

	return storage.QueryPage{
		Queries:    pgQueriesToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}
