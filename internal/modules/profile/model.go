// README: User profiles; one table, role-tagged variant instead of subtyping.
package profile

import (
	"time"

	"github.com/Blast-git/Journey-Sync/internal/types"
)

type Role string

const (
	RolePassenger Role = "passenger"
	RoleDriver    Role = "driver"
)

// Profile carries the fields common to both roles plus the role-specific
// extras. Driver holds rating data, Passenger holds the demographics recorded
// at booking time. Exactly one of the two is meaningful for a given Role.
type Profile struct {
	ID        types.ID
	Role      Role
	FullName  string
	Phone     string
	Email     string
	AvatarURL string
	CreatedAt time.Time

	Driver    *DriverInfo
	Passenger *PassengerInfo
}

type DriverInfo struct {
	AverageRating float64
	TotalRatings  int
}

type PassengerInfo struct {
	Gender string
	Age    int
}

func (p *Profile) IsDriver() bool { return p.Role == RoleDriver }
