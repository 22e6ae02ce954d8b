package entities

import "errors"

// Sentinel errors for the generation domain. Callers branch on these with
// errors.Is; call sites attach context with %w wrapping.
var (
	// ErrTooFewPeople indicates a non-positive people count.
	ErrTooFewPeople = errors.New("riddler: at least one person is required")

	// ErrSpatialNeedsPair indicates a spatial relation profile was requested
	// for fewer than two people.
	ErrSpatialNeedsPair = errors.New("riddler: spatial relations require at least two people")

	// ErrNamePoolExhausted indicates the requested people count exceeds the
	// name vocabulary.
	ErrNamePoolExhausted = errors.New("riddler: name pool exhausted")

	// ErrNegativePathLength indicates a negative minimum solution-path length.
	ErrNegativePathLength = errors.New("riddler: minimum path length must not be negative")

	// ErrInvalidDifficulty indicates an unknown difficulty tier.
	ErrInvalidDifficulty = errors.New("riddler: invalid difficulty")

	// ErrInvalidProfile indicates an unknown relation profile.
	ErrInvalidProfile = errors.New("riddler: invalid relation profile")

	// ErrInvalidSeatingKind indicates an unknown seating kind.
	ErrInvalidSeatingKind = errors.New("riddler: invalid seating kind")

	// ErrPathUnreachable indicates the generated fact graph cannot supply a
	// solution path of the requested length. Callers should lower the length
	// or raise the people count.
	ErrPathUnreachable = errors.New("riddler: fact graph cannot reach the requested path length")
)
