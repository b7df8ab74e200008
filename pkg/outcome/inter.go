package outcome

import "time"

type Provider[T any] interface {
	// Data returns the successful value
	Data() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFault defines an interface for types that hold either a value or a fault
type WithFault[T, E any] interface {
	Provider[T]
	// Fault returns the fault if the operation failed
	Fault() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
