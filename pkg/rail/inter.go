package rail

import (
	"time"

	"github.com/google/uuid"
)

type Provider[S, F any] interface {
	// Success returns the success payload (zero value on the failure track)
	Success() S
	// Failure returns the failure payload (zero value on the success track)
	Failure() F
}

// Tagged defines an interface for types that report which track is active
type Tagged[S, F any] interface {
	Provider[S, F]
	// IsSuccess returns true if the outcome is on the success track
	IsSuccess() bool
	// IsFailure returns true if the outcome is on the failure track
	IsFailure() bool
}

// Traceable extends Tagged with construction metadata
type Traceable[S, F any] interface {
	Tagged[S, F]
	// Id returns the construction identity
	Id() uuid.UUID
	// CreatedAt time of construction (UTC)
	CreatedAt() time.Time
}

var _ Traceable[any, any] = Result[any, any]{}
