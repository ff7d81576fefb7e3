// README: Booking aggregate and status definitions.
package booking

import (
	"strings"
	"time"

	"github.com/Blast-git/Journey-Sync/internal/types"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ActiveStatuses are the statuses eligible for reminder processing.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

type Booking struct {
	ID             types.ID
	RideID         types.ID
	PassengerID    types.ID
	SeatsBooked    int
	TotalPrice     types.Money
	PassengerNotes string
	PreferredSeat  string
	Status         Status

	Tier1SentAt *time.Time
	Tier2SentAt *time.Time
	Tier3SentAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Reference is the customer-facing booking reference shown in confirmations.
func (b *Booking) Reference() string {
	return "RS" + strings.ToUpper(b.ID.Short())
}
