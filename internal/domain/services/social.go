package services

import (
	"math/rand"

	"github.com/ersonp/riddler/internal/domain/entities"
)

// kinshipState tracks which kinship group each unordered pair of people
// already holds. A pair holds at most one group, so the generator never
// assigns, say, parent_of and spouse_of to the same two people.
type kinshipState map[[2]entities.Person]string

func pairOf(a, b entities.Person) [2]entities.Person {
	if a > b {
		a, b = b, a
	}
	return [2]entities.Person{a, b}
}

func (st kinshipState) allows(a, b entities.Person, rel entities.Relation) bool {
	group := rel.KinshipGroup()
	if group == "" {
		return true
	}
	held, ok := st[pairOf(a, b)]
	return !ok || held == group
}

func (st kinshipState) register(a, b entities.Person, rel entities.Relation) {
	if group := rel.KinshipGroup(); group != "" {
		st[pairOf(a, b)] = group
	}
}

// generateSocialFacts assigns count non-spatial relation instances between
// distinct pairs of people, skipping triples already present and respecting
// kinship exclusivity. Each assignment emits the fact and its inverse. The
// generator stops early when no viable pair remains.
func generateSocialFacts(rng *rand.Rand, set *factSet, people []entities.Person, unlocked []entities.Relation, count int) {
	var rels []entities.Relation
	for _, r := range unlocked {
		if r.Category() != entities.CategorySpatial {
			rels = append(rels, r)
		}
	}
	if len(rels) == 0 || len(people) < 2 {
		return
	}

	st := make(kinshipState)
	for k := 0; k < count; k++ {
		type candidate struct {
			subj, obj entities.Person
			valid     []entities.Relation
		}
		var viable []candidate
		for _, a := range people {
			for _, b := range people {
				if a == b {
					continue
				}
				var valid []entities.Relation
				for _, r := range rels {
					if !st.allows(a, b, r) {
						continue
					}
					if set.has(a, r, b) {
						continue
					}
					valid = append(valid, r)
				}
				if len(valid) > 0 {
					viable = append(viable, candidate{subj: a, obj: b, valid: valid})
				}
			}
		}
		if len(viable) == 0 {
			return
		}
		c := viable[rng.Intn(len(viable))]
		rel := c.valid[rng.Intn(len(c.valid))]
		set.addPair(c.subj, rel, c.obj)
		st.register(c.subj, c.obj, rel)
	}
}
