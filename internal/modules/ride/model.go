// README: Ride aggregate; departure is a naive-local date+time pair.
package ride

import (
	"fmt"
	"time"

	"github.com/Blast-git/Journey-Sync/internal/types"
)

type Vehicle struct {
	ID           types.ID
	Brand        string
	CarModel     string
	CarType      string
	LicensePlate string
	Color        string
}

type Ride struct {
	ID             types.ID
	DriverID       types.ID
	VehicleID      types.ID
	FromCity       string
	ToCity         string
	PickupPoint    string
	DepartureDate  string // YYYY-MM-DD
	DepartureTime  string // HH:MM, 24h
	PricePerSeat   types.Money
	AvailableSeats int
	IsActive       bool
	CreatedAt      time.Time
}

// DepartureAt composes the departure instant from the stored date and time.
// The pair carries no timezone; it is interpreted in the process-local zone,
// which assumes a single-timezone deployment. Note this mirrors the upstream
// data model rather than fixing it.
func (r *Ride) DepartureAt() (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02 15:04:05"} {
		t, err := time.ParseInLocation(layout, r.DepartureDate+" "+r.DepartureTime, time.Local)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("ride %s: bad departure %q %q", r.ID, r.DepartureDate, r.DepartureTime)
}
