package ports

import "time"

// Clock is the current-time source used by the expiry rule and record timestamps.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces globally unique transaction references.
type IDGenerator interface {
	NewID() string
}
