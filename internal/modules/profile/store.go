// README: Profile store backed by PostgreSQL.
package profile

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Blast-git/Journey-Sync/internal/types"
)

var ErrNotFound = errors.New("profile not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Profile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, role, full_name, phone, email, avatar_url,
		       average_rating, total_ratings, gender, age, created_at
		FROM profiles
		WHERE id = $1`, string(id),
	)

	var p Profile
	var avatar, gender sql.NullString
	var avgRating sql.NullFloat64
	var totalRatings, age sql.NullInt64

	err := row.Scan(
		&p.ID, &p.Role, &p.FullName, &p.Phone, &p.Email, &avatar,
		&avgRating, &totalRatings, &gender, &age, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if avatar.Valid {
		p.AvatarURL = avatar.String
	}
	switch p.Role {
	case RoleDriver:
		p.Driver = &DriverInfo{}
		if avgRating.Valid {
			p.Driver.AverageRating = avgRating.Float64
		}
		if totalRatings.Valid {
			p.Driver.TotalRatings = int(totalRatings.Int64)
		}
	case RolePassenger:
		p.Passenger = &PassengerInfo{}
		if gender.Valid {
			p.Passenger.Gender = gender.String
		}
		if age.Valid {
			p.Passenger.Age = int(age.Int64)
		}
	}
	return &p, nil
}

// UpdateDemographics records the gender and age collected on the booking form.
func (s *Store) UpdateDemographics(ctx context.Context, id types.ID, gender string, age int) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE profiles
		SET gender = $1, age = $2
		WHERE id = $3`,
		gender, age, string(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
