// README: Emergency contact store backed by PostgreSQL.
package sos

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Blast-git/Journey-Sync/internal/types"
)

var (
	ErrNotFound     = errors.New("emergency contact not found")
	ErrContactLimit = errors.New("emergency contact limit reached")
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) ListByUser(ctx context.Context, userID types.ID) ([]Contact, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, name, phone, relation, created_at
		FROM emergency_contacts
		WHERE user_id = $1
		ORDER BY created_at`, string(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Relation, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Add inserts a contact, enforcing the per-user cap inside the statement so
// concurrent adds cannot exceed it.
func (s *Store) Add(ctx context.Context, c *Contact) error {
	tag, err := s.db.Exec(ctx, `
		INSERT INTO emergency_contacts (id, user_id, name, phone, relation)
		SELECT $1, $2, $3, $4, $5
		WHERE (
			SELECT count(*) FROM emergency_contacts WHERE user_id = $2
		) < $6`,
		string(c.ID), string(c.UserID), c.Name, c.Phone, c.Relation, MaxContacts,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrContactLimit
	}
	return nil
}

func (s *Store) Update(ctx context.Context, c *Contact) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE emergency_contacts
		SET name = $1, phone = $2, relation = $3
		WHERE id = $4 AND user_id = $5`,
		c.Name, c.Phone, c.Relation, string(c.ID), string(c.UserID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, userID, contactID types.ID) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM emergency_contacts
		WHERE id = $1 AND user_id = $2`,
		string(contactID), string(userID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) RecordAlert(ctx context.Context, a *Alert) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO sos_alerts (id, user_id, message, location_url, contacted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		string(a.ID), string(a.UserID), a.Message, a.LocationURL, a.Contacted, a.CreatedAt,
	)
	return err
}
