package syncx

import (
	"context"
	"database/sql"
	"time"
)

const (
	EventSessionSubmitted = "SessionSubmitted"
	EventSessionScored    = "SessionScored"
)

type Event struct {
	Seq       int64
	SiteID    string
	Type      string
	Key       string
	DataJSON  string
	CreatedAt int64
}

type EventRepo struct {
	db     *sql.DB
	siteID string
}

func NewEventRepo(db *sql.DB, siteID string) *EventRepo {
	if siteID == "" {
		siteID = "local"
	}
	return &EventRepo{db: db, siteID: siteID}
}

func (r *EventRepo) Append(ctx context.Context, e Event) error {
	site := e.SiteID
	if site == "" {
		site = r.siteID
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		site, e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}

// ListByKey returns the events recorded for key, oldest first.
func (r *EventRepo) ListByKey(ctx context.Context, key string) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, site_id, typ, key, data, created_at FROM event_log WHERE key=$1 ORDER BY seq`, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Seq, &e.SiteID, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
