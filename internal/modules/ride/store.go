// README: Ride store backed by PostgreSQL; search joins vehicle and driver.
package ride

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Blast-git/Journey-Sync/internal/types"
)

var ErrNotFound = errors.New("ride not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// SearchFilter narrows the listing; zero values mean "no constraint".
type SearchFilter struct {
	FromCity string
	ToCity   string
	Date     string // exact departure date, YYYY-MM-DD
	MinSeats int
}

// Listing is a search row: the ride plus the driver and vehicle summary the
// booking screen shows.
type Listing struct {
	Ride          Ride
	Vehicle       Vehicle
	DriverName    string
	DriverPhone   string
	DriverRating  float64
	DriverRatings int
}

const listingColumns = `
	r.id, r.driver_id, r.vehicle_id, r.from_city, r.to_city, r.pickup_point,
	to_char(r.departure_date, 'YYYY-MM-DD'), to_char(r.departure_time, 'HH24:MI'),
	r.price_per_seat, r.available_seats, r.is_active, r.created_at,
	v.id, v.brand, v.car_model, v.car_type, v.license_plate, v.color,
	p.full_name, p.phone, COALESCE(p.average_rating, 0), COALESCE(p.total_ratings, 0)`

// Search returns active future rides with free seats, soonest first.
func (s *Store) Search(ctx context.Context, f SearchFilter) ([]Listing, error) {
	var (
		conds = []string{
			"r.is_active = true",
			"r.available_seats > 0",
			"r.departure_date >= CURRENT_DATE",
		}
		args []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.FromCity != "" {
		conds = append(conds, "r.from_city ILIKE "+arg("%"+f.FromCity+"%"))
	}
	if f.ToCity != "" {
		conds = append(conds, "r.to_city ILIKE "+arg("%"+f.ToCity+"%"))
	}
	if f.Date != "" {
		conds = append(conds, "r.departure_date = "+arg(f.Date))
	}
	if f.MinSeats > 1 {
		conds = append(conds, "r.available_seats >= "+arg(f.MinSeats))
	}

	query := `
		SELECT ` + listingColumns + `
		FROM rides r
		JOIN vehicles v ON v.id = r.vehicle_id
		JOIN profiles p ON p.id = r.driver_id
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY r.departure_date, r.departure_time`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Listing
	for rows.Next() {
		var l Listing
		if err := scanListing(rows, &l); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Listing, error) {
	row := s.db.QueryRow(ctx, `
		SELECT `+listingColumns+`
		FROM rides r
		JOIN vehicles v ON v.id = r.vehicle_id
		JOIN profiles p ON p.id = r.driver_id
		WHERE r.id = $1`, string(id),
	)
	var l Listing
	err := scanListing(row, &l)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func scanListing(row pgx.Row, l *Listing) error {
	err := row.Scan(
		&l.Ride.ID, &l.Ride.DriverID, &l.Ride.VehicleID,
		&l.Ride.FromCity, &l.Ride.ToCity, &l.Ride.PickupPoint,
		&l.Ride.DepartureDate, &l.Ride.DepartureTime,
		&l.Ride.PricePerSeat.Amount, &l.Ride.AvailableSeats,
		&l.Ride.IsActive, &l.Ride.CreatedAt,
		&l.Vehicle.ID, &l.Vehicle.Brand, &l.Vehicle.CarModel,
		&l.Vehicle.CarType, &l.Vehicle.LicensePlate, &l.Vehicle.Color,
		&l.DriverName, &l.DriverPhone, &l.DriverRating, &l.DriverRatings,
	)
	if err != nil {
		return err
	}
	l.Ride.PricePerSeat.Currency = "INR"
	return nil
}
