// README: Ride reminder notifications: tiers, audiences, scheduler contracts.
package notification

import (
	"errors"
	"time"

	"github.com/Blast-git/Journey-Sync/internal/modules/ride"
	"github.com/Blast-git/Journey-Sync/internal/types"
)

type Audience string

const (
	AudiencePassenger Audience = "passenger"
	AudienceDriver    Audience = "driver"
)

// Notification is immutable once persisted; the sink owns it from then on.
type Notification struct {
	ID        types.ID
	BookingID types.ID
	UserID    types.ID
	Audience  Audience
	Tier      Tier
	Title     string
	Message   string
	CreatedAt time.Time
}

// ContactInfo is the name/phone pair embedded in reminder content.
type ContactInfo struct {
	FullName string
	Phone    string
}

// Snapshot is one eligible booking with the joined data the content templates
// need. It is the scheduler's only view of the booking store.
type Snapshot struct {
	BookingID   types.ID
	PassengerID types.ID
	Status      string

	Tier1Sent bool
	Tier2Sent bool
	Tier3Sent bool

	Ride      *ride.Ride
	Vehicle   *ride.Vehicle
	Driver    *ContactInfo
	Passenger *ContactInfo
}

// TierSent reports whether the given tier's reminder has already been claimed.
func (s *Snapshot) TierSent(t Tier) bool {
	switch t {
	case TierOneHour:
		return s.Tier1Sent
	case TierThirtyMinutes:
		return s.Tier2Sent
	case TierFifteenMinutes:
		return s.Tier3Sent
	}
	return false
}

var (
	// ErrIncompleteSnapshot marks a booking whose joined ride, vehicle or
	// profile data is missing; content generation fails loudly on it.
	ErrIncompleteSnapshot = errors.New("booking snapshot missing joined data")
)
