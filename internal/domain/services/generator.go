// Package services implements the puzzle generation pipeline: people pool,
// seating builder, spatial derivation, social relation generation and
// solution-path selection.
package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/ersonp/riddler/internal/domain/entities"
)

// Params configures a single generation run.
type Params struct {
	// People is the number of participants; must be at least 1 (2 for the
	// spatial profile).
	People int
	// MinPathLen is the minimum solution-path edge count; must not be
	// negative.
	MinPathLen int
	// Seed drives the whole run. Nil picks a time-based seed.
	Seed *int64
	// SeatingKind forces a layout; empty lets the seeded stream choose.
	SeatingKind entities.SeatingKind
	// Profile narrows the relation catalog; empty means auto.
	Profile entities.Profile
	// Difficulty gates the catalog and the empty-seat count.
	Difficulty entities.Difficulty
}

// Generator produces deduction puzzles. It holds no state between calls:
// each Generate owns its own random stream, so concurrent calls with
// different seeds cannot interfere.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate runs the full pipeline: people -> seating -> spatial + social
// facts -> solution path -> puzzle aggregate. The random stream is consumed
// in that fixed order, so a fixed seed reproduces an identical puzzle.
func (g *Generator) Generate(p Params) (*entities.Puzzle, error) {
	p, err := normalize(p)
	if err != nil {
		return nil, err
	}

	seed := time.Now().UnixNano()
	if p.Seed != nil {
		seed = *p.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	people, err := pickNames(rng, p.People)
	if err != nil {
		return nil, err
	}

	kind := p.SeatingKind
	if kind == "" {
		kind = entities.SeatingKinds[rng.Intn(len(entities.SeatingKinds))]
	}
	seating := buildSeating(rng, people, kind, p.Difficulty)

	unlocked := entities.Unlocked(p.Difficulty, p.Profile, kind)

	set := newFactSet(rng)
	deriveSpatialFacts(set, seating, unlocked)

	extraLo := p.People - 2
	if extraLo < 0 {
		extraLo = 0
	}
	extraHi := p.People + 2
	extra := extraLo + rng.Intn(extraHi-extraLo+1)
	generateSocialFacts(rng, set, people, unlocked, extra)

	path, err := newFactGraph(set.facts).selectPath(rng, p.MinPathLen)
	if err != nil {
		return nil, err
	}

	return &entities.Puzzle{
		Names:            people,
		Facts:            set.facts,
		Seating:          seating,
		SolutionPath:     path,
		GraphDescription: entities.DescribeGraph(set.facts),
		SolutionSummary:  entities.SummarizePath(set.facts, path),
	}, nil
}

// normalize validates the parameters up front, before any generation work,
// and fills profile defaults.
func normalize(p Params) (Params, error) {
	if p.People < 1 {
		return p, fmt.Errorf("%w: got %d", entities.ErrTooFewPeople, p.People)
	}
	if p.MinPathLen < 0 {
		return p, fmt.Errorf("%w: got %d", entities.ErrNegativePathLength, p.MinPathLen)
	}
	if p.Profile == "" {
		p.Profile = entities.ProfileAuto
	}
	if _, err := entities.ParseProfile(string(p.Profile)); err != nil {
		return p, err
	}
	if _, err := entities.ParseDifficulty(string(p.Difficulty)); err != nil {
		return p, err
	}
	if p.SeatingKind != "" {
		if _, err := entities.ParseSeatingKind(string(p.SeatingKind)); err != nil {
			return p, err
		}
	}
	if p.Profile == entities.ProfileSpatial && p.People < 2 {
		return p, fmt.Errorf("%w: got %d people", entities.ErrSpatialNeedsPair, p.People)
	}
	return p, nil
}
