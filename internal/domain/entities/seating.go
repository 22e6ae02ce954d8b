package entities

import (
	"encoding/json"
	"fmt"
)

// SeatingKind is the topology of a seating arrangement. Circular seatings
// treat the last seat and seat 1 as adjacent; linear seatings do not.
type SeatingKind string

const (
	SeatingLinear   SeatingKind = "linear"
	SeatingCircular SeatingKind = "circular"
)

// SeatingKinds lists the valid seating kinds.
var SeatingKinds = []SeatingKind{SeatingLinear, SeatingCircular}

// ParseSeatingKind converts a string flag value into a SeatingKind.
func ParseSeatingKind(s string) (SeatingKind, error) {
	switch k := SeatingKind(s); k {
	case SeatingLinear, SeatingCircular:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSeatingKind, s)
	}
}

// Seat is either occupied by a person or an explicit empty sentinel.
// Spatial derivation skips empty seats, so the occupant is only reachable
// through Occupant, which reports occupancy alongside the person.
type Seat struct {
	person   Person
	occupied bool
}

// OccupiedSeat returns a seat holding the given person.
func OccupiedSeat(p Person) Seat {
	return Seat{person: p, occupied: true}
}

// EmptySeat returns a sentinel empty seat.
func EmptySeat() Seat {
	return Seat{}
}

// Occupant returns the seated person and whether the seat is occupied.
func (s Seat) Occupant() (Person, bool) {
	return s.person, s.occupied
}

// Empty reports whether the seat is a sentinel empty seat.
func (s Seat) Empty() bool {
	return !s.occupied
}

// MarshalJSON renders an occupied seat as the person's name and an empty
// seat as null.
func (s Seat) MarshalJSON() ([]byte, error) {
	if !s.occupied {
		return []byte("null"), nil
	}
	return json.Marshal(s.person)
}

// UnmarshalJSON accepts the encoding produced by MarshalJSON.
func (s *Seat) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = EmptySeat()
		return nil
	}
	var p Person
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = OccupiedSeat(p)
	return nil
}

// Seating is a read-only seat arrangement. Seats[i] is seat number i+1;
// seat numbers are contiguous from 1.
type Seating struct {
	Kind  SeatingKind `json:"kind"`
	Seats []Seat      `json:"seats"`
}

// Occupants returns the seated people in seat order, skipping empty seats.
func (s Seating) Occupants() []Person {
	var out []Person
	for _, seat := range s.Seats {
		if p, ok := seat.Occupant(); ok {
			out = append(out, p)
		}
	}
	return out
}

// OccupiedCount returns the number of non-empty seats.
func (s Seating) OccupiedCount() int {
	n := 0
	for _, seat := range s.Seats {
		if !seat.Empty() {
			n++
		}
	}
	return n
}
