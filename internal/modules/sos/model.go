// README: Emergency contacts and SOS alerts.
package sos

import (
	"time"

	"github.com/Blast-git/Journey-Sync/internal/types"
)

// MaxContacts caps how many emergency contacts a user may register.
const MaxContacts = 5

type Contact struct {
	ID        types.ID
	UserID    types.ID
	Name      string
	Phone     string
	Relation  string
	CreatedAt time.Time
}

// Alert records one SOS trigger and how many contacts were reached.
type Alert struct {
	ID          types.ID
	UserID      types.ID
	Message     string
	LocationURL string
	Contacted   int
	CreatedAt   time.Time
}
