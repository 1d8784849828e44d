package identifier

import "errors"

var (
	// ErrExhaustedKeyspace is returned by [Generator.Generate] when no free
	// identifier was found within the bounded number of attempts. It calls for
	// operator intervention (e.g. a longer identifier), not a retry.
	ErrExhaustedKeyspace = errors.New("could not generate a unique identifier: keyspace exhausted")

	// ErrInvalidIdentifier is returned when a value is not a 6-hex-digit identifier.
	ErrInvalidIdentifier = errors.New("identifier must be 6 hex digits (e.g. A1B2C3)")
)
