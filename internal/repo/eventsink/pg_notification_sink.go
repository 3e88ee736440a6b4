// Package eventsink stores accepted webhook notifications.
package eventsink

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"StorefrontPayments/internal/webhook"
	"StorefrontPayments/pkg/postgres"
)

// PgNotificationSink records notifications in Postgres. A uniqueness
// constraint on (psp_reference, event_code, success) turns processor
// redelivery into ErrNotificationAlreadyStored.
type PgNotificationSink struct {
	db      postgres.Executor
	builder squirrel.StatementBuilderType
}

var _ webhook.NotificationSink = (*PgNotificationSink)(nil)

func NewPgNotificationSink(pg *postgres.Postgres) *PgNotificationSink {
	return &PgNotificationSink{
		db:      pg.Pool,
		builder: pg.Builder,
	}
}

func (r *PgNotificationSink) Store(ctx context.Context, n webhook.Notification) error {
	id := uuid.New().String()

	query, args, err := r.builder.Insert("notification_events").
		Columns("id", "site_id", "psp_reference", "event_code", "merchant_reference",
			"success", "live", "payload", "created_at").
		Values(id, n.SiteID, n.Item.PSPReference, n.Item.EventCode, n.Item.MerchantReference,
			n.Item.IsSuccess(), n.Live, []byte(n.Raw), time.Now().UTC()).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert query: %w", err)
	}

	_, err = r.db.Exec(ctx, query, args...)
	if postgres.IsPgErrorUniqueViolation(err) {
		return fmt.Errorf("%w: %s %s", webhook.ErrNotificationAlreadyStored,
			n.Item.PSPReference, n.Item.EventCode)
	}
	if err != nil {
		return fmt.Errorf("store notification event: %w", err)
	}
	return nil
}

// NotificationEvent is a stored notification row.
type NotificationEvent struct {
	ID                string
	SiteID            string
	PSPReference      string
	EventCode         string
	MerchantReference string
	Success           bool
	Live              bool
	Payload           []byte
	CreatedAt         time.Time
}

// NotificationQuery filters stored notifications.
type NotificationQuery struct {
	MerchantReferences []string
	EventCodes         []string
}

// GetNotifications returns stored notifications, newest first.
func (r *PgNotificationSink) GetNotifications(ctx context.Context, q NotificationQuery) ([]NotificationEvent, error) {
	sqlQuery, args := r.buildNotificationsQuery(q)

	rows, err := r.db.Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("query notification events: %w", err)
	}
	defer rows.Close()

	return parseNotificationRows(rows)
}

func (r *PgNotificationSink) buildNotificationsQuery(q NotificationQuery) (string, []interface{}) {
	query := r.builder.Select("id", "site_id", "psp_reference", "event_code",
		"merchant_reference", "success", "live", "payload", "created_at").
		From("notification_events").
		OrderBy("created_at DESC")

	if len(q.MerchantReferences) > 0 {
		query = query.Where(squirrel.Eq{"merchant_reference": q.MerchantReferences})
	}

	if len(q.EventCodes) > 0 {
		query = query.Where(squirrel.Eq{"event_code": q.EventCodes})
	}

	sql, args, _ := query.ToSql()
	return sql, args
}

func parseNotificationRows(rows pgx.Rows) ([]NotificationEvent, error) {
	var events []NotificationEvent
	for rows.Next() {
		var e NotificationEvent
		err := rows.Scan(&e.ID, &e.SiteID, &e.PSPReference, &e.EventCode,
			&e.MerchantReference, &e.Success, &e.Live, &e.Payload, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan notification event row: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notification event rows: %w", err)
	}

	return events, nil
}
