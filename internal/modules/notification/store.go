// README: Notification store backed by PostgreSQL; insert-only.
package notification

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, n *Notification) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO notifications (
			id, booking_id, user_id, user_type, notification_type,
			title, message, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(n.ID),
		string(n.BookingID),
		string(n.UserID),
		string(n.Audience),
		string(n.Tier),
		n.Title,
		n.Message,
		n.CreatedAt,
	)
	return err
}
