package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/riddler/internal/domain/entities"
)

func TestGenerateSocialFactsEmitsPairs(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	set := newFactSet(rng)
	people := []entities.Person{"Alex", "Sam", "Quinn", "Dana"}
	unlocked := entities.Unlocked(entities.DifficultyLow, entities.ProfileSocial, entities.SeatingLinear)

	generateSocialFacts(rng, set, people, unlocked, 3)

	// Every assignment lands a new triple plus its companion inverse.
	require.Len(t, set.facts, 6)
	for _, f := range set.facts {
		assert.NotEqual(t, entities.CategorySpatial, f.Relation.Category())
		assert.NotEqual(t, f.Subject, f.Object)
		assert.True(t, set.has(f.Object, f.Relation.Inverse(), f.Subject),
			"companion of %s %s %s missing", f.Subject, f.Relation, f.Object)
	}
}

func TestGenerateSocialFactsNeverEmitsSpatialRelations(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	set := newFactSet(rng)
	people := []entities.Person{"Alex", "Sam", "Quinn"}
	unlocked := entities.Unlocked(entities.DifficultyHigh, entities.ProfileAll, entities.SeatingCircular)

	generateSocialFacts(rng, set, people, unlocked, 10)

	for _, f := range set.facts {
		assert.NotEqual(t, entities.CategorySpatial, f.Relation.Category(), "relation %s", f.Relation)
	}
}

func TestGenerateSocialFactsRespectsKinshipExclusivity(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		set := newFactSet(rng)
		people := []entities.Person{"Alex", "Sam", "Quinn"}
		unlocked := entities.Unlocked(entities.DifficultyMedium, entities.ProfileSocial, entities.SeatingLinear)

		generateSocialFacts(rng, set, people, unlocked, 50)

		groups := make(map[[2]entities.Person]map[string]bool)
		for _, f := range set.facts {
			group := f.Relation.KinshipGroup()
			if group == "" {
				continue
			}
			key := pairOf(f.Subject, f.Object)
			if groups[key] == nil {
				groups[key] = make(map[string]bool)
			}
			groups[key][group] = true
		}
		for key, held := range groups {
			assert.Len(t, held, 1, "seed %d: pair %v holds multiple kinship groups", seed, key)
		}
	}
}

func TestGenerateSocialFactsStopsWhenExhausted(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	set := newFactSet(rng)
	people := []entities.Person{"Alex", "Sam"}
	unlocked := []entities.Relation{entities.RelFriendOf}

	// Only one friend_of pair exists between two people; the rest of the
	// requested count has nowhere to go.
	generateSocialFacts(rng, set, people, unlocked, 10)

	assert.Len(t, set.facts, 2)
}

func TestGenerateSocialFactsNoDuplicateTriples(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	set := newFactSet(rng)
	people := []entities.Person{"Alex", "Sam", "Quinn", "Dana", "Remy"}
	unlocked := entities.Unlocked(entities.DifficultyHigh, entities.ProfileSocial, entities.SeatingLinear)

	generateSocialFacts(rng, set, people, unlocked, 40)

	seen := make(map[tripleKey]bool)
	for _, f := range set.facts {
		key := tripleKey{f.Subject, f.Relation, f.Object}
		assert.False(t, seen[key], "duplicate triple %v", key)
		seen[key] = true
	}
}
