package services

import (
	"math/rand"

	"github.com/ersonp/riddler/internal/domain/entities"
)

// buildSeating shuffles people into seats and, when the difficulty permits,
// inserts sentinel empty seats at seeded positions. Seat numbers stay
// contiguous from 1; empty seats never receive relation facts.
func buildSeating(rng *rand.Rand, people []entities.Person, kind entities.SeatingKind, difficulty entities.Difficulty) entities.Seating {
	order := make([]entities.Person, len(people))
	copy(order, people)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	seats := make([]entities.Seat, 0, len(order))
	for _, p := range order {
		seats = append(seats, entities.OccupiedSeat(p))
	}

	lo, hi := difficulty.EmptySeatRange()
	empties := lo
	if hi > lo {
		empties += rng.Intn(hi - lo + 1)
	}
	for i := 0; i < empties; i++ {
		pos := rng.Intn(len(seats) + 1)
		seats = append(seats[:pos], append([]entities.Seat{entities.EmptySeat()}, seats[pos:]...)...)
	}

	return entities.Seating{Kind: kind, Seats: seats}
}
