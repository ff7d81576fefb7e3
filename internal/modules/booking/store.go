// README: Booking store backed by PostgreSQL; seat decrement and reminder
// claims are single conditional statements, never read-then-write.
package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Blast-git/Journey-Sync/internal/modules/notification"
	"github.com/Blast-git/Journey-Sync/internal/modules/ride"
	"github.com/Blast-git/Journey-Sync/internal/types"
)

var (
	ErrNotFound = errors.New("booking not found")
	ErrNoSeats  = errors.New("not enough seats available")
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Create inserts the booking and decrements the ride's seat count in one
// transaction. The decrement is conditional on enough seats remaining, so two
// concurrent bookings can never oversell the ride.
func (s *Store) Create(ctx context.Context, b *Booking) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `
		UPDATE rides
		SET available_seats = available_seats - $1
		WHERE id = $2 AND is_active = true AND available_seats >= $1`,
		b.SeatsBooked, string(b.RideID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoSeats
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (
			id, ride_id, passenger_id, seats_booked, total_price,
			passenger_notes, preferred_seat, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`,
		string(b.ID),
		string(b.RideID),
		string(b.PassengerID),
		b.SeatsBooked,
		b.TotalPrice.Amount,
		b.PassengerNotes,
		b.PreferredSeat,
		string(b.Status),
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, ride_id, passenger_id, seats_booked, total_price,
		       passenger_notes, preferred_seat, status,
		       notif_1hr_sent_at, notif_30min_sent_at, notif_15min_sent_at,
		       created_at, updated_at
		FROM bookings
		WHERE id = $1`, string(id),
	)

	var b Booking
	var t1, t2, t3 sql.NullTime
	err := row.Scan(
		&b.ID, &b.RideID, &b.PassengerID, &b.SeatsBooked, &b.TotalPrice.Amount,
		&b.PassengerNotes, &b.PreferredSeat, &b.Status,
		&t1, &t2, &t3,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	b.TotalPrice.Currency = "INR"
	b.Tier1SentAt = toTimePtr(t1)
	b.Tier2SentAt = toTimePtr(t2)
	b.Tier3SentAt = toTimePtr(t3)
	return &b, nil
}

// HasActiveForRide reports whether the passenger already holds a pending or
// confirmed booking on the ride.
func (s *Store) HasActiveForRide(ctx context.Context, passengerID, rideID types.ID) (bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE passenger_id = $1 AND ride_id = $2
			  AND status IN ('pending','confirmed')
		)`, string(passengerID), string(rideID),
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// UpdateStatus moves the booking between statuses, conditional on the current
// status, and returns false when another writer got there first.
func (s *Store) UpdateStatus(ctx context.Context, id types.ID, from, to Status) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE bookings
		SET status = $1, updated_at = now()
		WHERE id = $2 AND status = $3`,
		string(to), string(id), string(from),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ReleaseSeats returns a cancelled booking's seats to the ride.
func (s *Store) ReleaseSeats(ctx context.Context, rideID types.ID, seats int) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE rides
		SET available_seats = available_seats + $1
		WHERE id = $2`,
		seats, string(rideID),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ride.ErrNotFound
	}
	return nil
}

// ActiveSnapshots implements notification.BookingSource: every pending or
// confirmed booking on an active ride, with the joined ride, vehicle, driver
// and passenger details the reminder templates need.
func (s *Store) ActiveSnapshots(ctx context.Context) ([]notification.Snapshot, error) {
	rows, err := s.db.Query(ctx, `
		SELECT b.id, b.passenger_id, b.status,
		       b.notif_1hr_sent, b.notif_30min_sent, b.notif_15min_sent,
		       r.id, r.driver_id, r.vehicle_id, r.from_city, r.to_city, r.pickup_point,
		       to_char(r.departure_date, 'YYYY-MM-DD'), to_char(r.departure_time, 'HH24:MI'),
		       v.brand, v.car_model, v.license_plate, v.color,
		       d.full_name, d.phone,
		       p.full_name, p.phone
		FROM bookings b
		JOIN rides r ON r.id = b.ride_id
		JOIN vehicles v ON v.id = r.vehicle_id
		JOIN profiles d ON d.id = r.driver_id
		JOIN profiles p ON p.id = b.passenger_id
		WHERE b.status IN ('pending','confirmed')
		  AND r.is_active = true`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []notification.Snapshot
	for rows.Next() {
		var (
			snap      notification.Snapshot
			rd        ride.Ride
			vehicle   ride.Vehicle
			driver    notification.ContactInfo
			passenger notification.ContactInfo
		)
		err := rows.Scan(
			&snap.BookingID, &snap.PassengerID, &snap.Status,
			&snap.Tier1Sent, &snap.Tier2Sent, &snap.Tier3Sent,
			&rd.ID, &rd.DriverID, &rd.VehicleID, &rd.FromCity, &rd.ToCity, &rd.PickupPoint,
			&rd.DepartureDate, &rd.DepartureTime,
			&vehicle.Brand, &vehicle.CarModel, &vehicle.LicensePlate, &vehicle.Color,
			&driver.FullName, &driver.Phone,
			&passenger.FullName, &passenger.Phone,
		)
		if err != nil {
			return nil, err
		}
		rd.IsActive = true
		snap.Ride = &rd
		snap.Vehicle = &vehicle
		snap.Driver = &driver
		snap.Passenger = &passenger
		out = append(out, snap)
	}
	return out, rows.Err()
}

// ClaimReminder implements notification.BookingSource. The flag transition is
// one-directional: the WHERE clause only matches an unset flag, and the
// affected-row count tells the caller whether it owns this send.
func (s *Store) ClaimReminder(ctx context.Context, bookingID types.ID, tier notification.Tier, at time.Time) (bool, error) {
	col, err := tierColumn(tier)
	if err != nil {
		return false, err
	}
	tag, err := s.db.Exec(ctx, fmt.Sprintf(`
		UPDATE bookings
		SET %[1]s = true, %[1]s_at = $1, updated_at = now()
		WHERE id = $2 AND %[1]s = false
		  AND status IN ('pending','confirmed')`, col),
		at, string(bookingID),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// tierColumn maps a tier to its flag column; the result is interpolated into
// SQL so it must come from this closed set only.
func tierColumn(tier notification.Tier) (string, error) {
	switch tier {
	case notification.TierOneHour:
		return "notif_1hr_sent", nil
	case notification.TierThirtyMinutes:
		return "notif_30min_sent", nil
	case notification.TierFifteenMinutes:
		return "notif_15min_sent", nil
	}
	return "", fmt.Errorf("unknown reminder tier %q", tier)
}

func toTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
