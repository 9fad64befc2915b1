package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/doug-martin/goqu/v9"

	"relay/pkg/domain"
)

const eventsTable = "events"

func (p *PgSQL) LogEvent(ctx context.Context, action string, metadata map[string]string) error {
	raw, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("could not marshal event metadata: %w", err)
	}

	if _, err := p.Builder.Insert(eventsTable).
		Rows(PgEvent{Action: action, Metadata: raw}).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not log event into pg: %w", err)
	}

	return nil
}

// Events returns the most recent audit records, newest first.
func (p *PgSQL) Events(ctx context.Context, limit uint) ([]domain.Event, error) {
	var rows []PgEvent
	if err := p.Builder.From(eventsTable).
		Order(goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch events from pg: %w", err)
	}

	out := make([]domain.Event, 0, len(rows))
	for i := range rows {
		e, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}

	return out, nil
}
