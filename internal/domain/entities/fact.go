// Package entities contains the core domain data structures for puzzle
// generation: people, the relation catalog, facts, seatings and the puzzle
// aggregate.
package entities

// Fact is an immutable directed relational triple with a unique id. For
// every emitted Fact(A, R, B) the same puzzle holds exactly one companion
// Fact(B, inverse(R), A); self-inverse relations emit both directions too,
// so the companion invariant is uniform across the catalog.
type Fact struct {
	ID       string   `json:"id"`
	Subject  Person   `json:"subject"`
	Relation Relation `json:"relation"`
	Object   Person   `json:"object"`
}

// InverseOf reports whether f states the reverse of other: same pair of
// people in opposite roles, related by the inverse relation.
func (f Fact) InverseOf(other Fact) bool {
	return f.Subject == other.Object &&
		f.Object == other.Subject &&
		f.Relation == other.Relation.Inverse()
}

// Touches reports whether the person is the fact's subject or object.
func (f Fact) Touches(p Person) bool {
	return f.Subject == p || f.Object == p
}

// Other returns the fact's endpoint opposite to p. If p is the subject it
// returns the object, otherwise the subject.
func (f Fact) Other(p Person) Person {
	if f.Subject == p {
		return f.Object
	}
	return f.Subject
}
