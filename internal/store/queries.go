package store

import (
	"context"
	"database/sql"
)

// DBTX is the connection surface queries run against, either a *sql.DB or a
// *sql.Tx.
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries wraps the prepared statement surface for the notification history
// schema.
type Queries struct {
	db DBTX
}

// Notification is one persisted snackbar posting. Timestamps are unix
// seconds; DismissedOn is zero until the message left the screen.
type Notification struct {
	NotificationID int64
	Kind           string
	Message        string
	Action         string
	DismissReason  string
	PostedOn       int64
	DismissedOn    int64
}

const insertNotification = `INSERT INTO notification (kind, message, action, posted_on)
VALUES (?, ?, ?, ?)`

type InsertNotificationParams struct {
	Kind     string
	Message  string
	Action   string
	PostedOn int64
}

// InsertNotification records a freshly posted message and returns its row id.
func (q *Queries) InsertNotification(ctx context.Context, arg InsertNotificationParams) (int64, error) {
	result, err := q.db.ExecContext(ctx, insertNotification,
		arg.Kind, arg.Message, arg.Action, arg.PostedOn)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

const markDismissed = `UPDATE notification
SET dismiss_reason = ?, dismissed_on = ?
WHERE notification_id = ?`

type MarkDismissedParams struct {
	DismissReason  string
	DismissedOn    int64
	NotificationID int64
}

// MarkDismissed stamps a recorded notification with how and when it left the
// screen.
func (q *Queries) MarkDismissed(ctx context.Context, arg MarkDismissedParams) error {
	_, err := q.db.ExecContext(ctx, markDismissed,
		arg.DismissReason, arg.DismissedOn, arg.NotificationID)

	return err
}

const recentNotifications = `SELECT notification_id, kind, message, action, dismiss_reason, posted_on, dismissed_on
FROM notification
ORDER BY posted_on DESC, notification_id DESC
LIMIT ?`

// RecentNotifications returns the newest recorded notifications first.
func (q *Queries) RecentNotifications(ctx context.Context, limit int64) ([]Notification, error) {
	rows, err := q.db.QueryContext(ctx, recentNotifications, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Notification
	for rows.Next() {
		var item Notification
		if err := rows.Scan(
			&item.NotificationID,
			&item.Kind,
			&item.Message,
			&item.Action,
			&item.DismissReason,
			&item.PostedOn,
			&item.DismissedOn,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

const pruneNotifications = `DELETE FROM notification
WHERE notification_id NOT IN (SELECT notification_id
                              FROM notification
                              ORDER BY posted_on DESC, notification_id DESC
                              LIMIT ?)`

// PruneNotifications drops everything but the newest keep rows.
func (q *Queries) PruneNotifications(ctx context.Context, keep int64) error {
	_, err := q.db.ExecContext(ctx, pruneNotifications, keep)

	return err
}
