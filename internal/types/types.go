// README: Common value types shared across modules.
package types

// ID is an opaque entity identifier (UUID string in persistence).
type ID string

func (id ID) Short() string {
	if len(id) < 8 {
		return string(id)
	}
	return string(id)[:8]
}

// Money is an integer amount in the smallest currency unit.
type Money struct {
	Amount   int64
	Currency string
}
