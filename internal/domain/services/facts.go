package services

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/ersonp/riddler/internal/domain/entities"
)

// factIDs mints fact ids from the seeded stream so that generation stays
// reproducible for a fixed seed.
type factIDs struct {
	rng *rand.Rand
}

func (g *factIDs) next() string {
	// math/rand readers never fail, so Must is safe here.
	return uuid.Must(uuid.NewRandomFromReader(g.rng)).String()
}

type tripleKey struct {
	subj entities.Person
	rel  entities.Relation
	obj  entities.Person
}

// factSet accumulates facts, deduplicating exact triples and keeping the
// bidirectional-closure invariant: every added fact brings its companion
// inverse with it.
type factSet struct {
	ids   *factIDs
	facts []entities.Fact
	index map[tripleKey]int
}

func newFactSet(rng *rand.Rand) *factSet {
	return &factSet{
		ids:   &factIDs{rng: rng},
		index: make(map[tripleKey]int),
	}
}

// has reports whether the exact triple is already present.
func (s *factSet) has(subj entities.Person, rel entities.Relation, obj entities.Person) bool {
	_, ok := s.index[tripleKey{subj, rel, obj}]
	return ok
}

// addPair records the fact (subj, rel, obj) together with its inverse
// (obj, inverse(rel), subj) and returns the forward fact. Re-adding an
// existing triple returns the original fact without emitting duplicates;
// self-inverse relations emit both directions.
func (s *factSet) addPair(subj entities.Person, rel entities.Relation, obj entities.Person) entities.Fact {
	key := tripleKey{subj, rel, obj}
	if i, ok := s.index[key]; ok {
		return s.facts[i]
	}
	fwd := entities.Fact{ID: s.ids.next(), Subject: subj, Relation: rel, Object: obj}
	s.index[key] = len(s.facts)
	s.facts = append(s.facts, fwd)

	invKey := tripleKey{obj, rel.Inverse(), subj}
	if _, ok := s.index[invKey]; !ok {
		inv := entities.Fact{ID: s.ids.next(), Subject: obj, Relation: rel.Inverse(), Object: subj}
		s.index[invKey] = len(s.facts)
		s.facts = append(s.facts, inv)
	}
	return fwd
}
