package service

// ResponseType enumerates the outcomes a service call reports to its handler
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// Conflict response, the order is not in a state that allows the transition
	Conflict
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"conflict",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
