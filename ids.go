package trackline

import "github.com/google/uuid"

// IDGenerator produces a unique identifier per call.
type IDGenerator interface {
	NewID() string
}

// UUIDs generates random (version 4) UUID strings.
type UUIDs struct{}

// NewID implements IDGenerator.
func (UUIDs) NewID() string {
	return uuid.NewString()
}
