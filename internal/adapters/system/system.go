// Package system provides the process-backed clock and reference generator.
package system

import (
	"time"

	"github.com/google/uuid"
)

// Clock reads the wall clock.
type Clock struct{}

func (Clock) Now() time.Time {
	return time.Now()
}

// UUIDGenerator issues random (version 4) UUIDs in their canonical text form.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
