package services

import "github.com/ersonp/riddler/internal/domain/entities"

// deriveSpatialFacts emits facts for every unlocked spatial relation over
// the seating. Empty seats are transparent: adjacency means the nearest
// occupied seat in a direction, and distance relations count hops over
// occupied seats only, so spatial facts always relate two people. Circular
// seatings wrap at the seat-count boundary; linear seatings simply have no
// relation past either end. Only canonical directions are derived directly;
// addPair supplies each inverse.
func deriveSpatialFacts(set *factSet, seating entities.Seating, unlocked []entities.Relation) {
	occ := seating.Occupants()
	n := len(occ)
	if n < 2 {
		return
	}
	circular := seating.Kind == entities.SeatingCircular

	want := make(map[entities.Relation]bool)
	for _, r := range unlocked {
		if r.Category() == entities.CategorySpatial {
			want[r.Canonical()] = true
		}
	}

	// at returns the occupant `step` occupied seats past i, wrapping on
	// circular seatings and running off the end on linear ones.
	at := func(i, step int) (entities.Person, bool) {
		j := i + step
		if circular {
			j = ((j % n) + n) % n
			if j == i {
				return "", false
			}
			return occ[j], true
		}
		if j < 0 || j >= n {
			return "", false
		}
		return occ[j], true
	}

	for i := 0; i < n; i++ {
		p := occ[i]
		if want[entities.RelLeftOf] {
			if q, ok := at(i, 1); ok {
				set.addPair(p, entities.RelLeftOf, q)
			}
		}
		if want[entities.RelNeighborOf] {
			if q, ok := at(i, 1); ok {
				set.addPair(p, entities.RelNeighborOf, q)
			}
		}
		if want[entities.RelTwoLeftOf] {
			if q, ok := at(i, 2); ok {
				set.addPair(p, entities.RelTwoLeftOf, q)
			}
		}
		if want[entities.RelClockwiseOf] && circular {
			// Seat numbers ascend clockwise, so the next occupant sits
			// clockwise of the current one.
			if q, ok := at(i, 1); ok {
				set.addPair(q, entities.RelClockwiseOf, p)
			}
		}
		if want[entities.RelAcrossFrom] && circular && n%2 == 0 {
			if q, ok := at(i, n/2); ok {
				set.addPair(p, entities.RelAcrossFrom, q)
			}
		}
	}
}
