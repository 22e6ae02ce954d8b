package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCatalog(t *testing.T) {
	require.NoError(t, CheckCatalog())
}

func TestRelationInverseIsInvolution(t *testing.T) {
	for _, r := range AllRelations() {
		assert.Equal(t, r, r.Inverse().Inverse(), "inverse of inverse of %s", r)
	}
}

func TestRelationCategoryClosedUnderInverse(t *testing.T) {
	for _, r := range AllRelations() {
		assert.Equal(t, r.Category(), r.Inverse().Category(), "category of %s", r)
	}
}

func TestRelationCanonicalSharedWithInverse(t *testing.T) {
	for _, r := range AllRelations() {
		assert.Equal(t, r.Canonical(), r.Inverse().Canonical(), "canonical of %s", r)
		assert.Contains(t, []Relation{r, r.Inverse()}, r.Canonical(), "canonical of %s must be the relation or its inverse", r)
	}
}

func TestRelationSelfInverse(t *testing.T) {
	assert.True(t, RelNeighborOf.SelfInverse())
	assert.True(t, RelFriendOf.SelfInverse())
	assert.True(t, RelAcrossFrom.SelfInverse())
	assert.False(t, RelParentOf.SelfInverse())
	assert.False(t, RelLeftOf.SelfInverse())
	assert.Equal(t, RelChildOf, RelParentOf.Inverse())
	assert.Equal(t, RelRightOf, RelLeftOf.Inverse())
	assert.Equal(t, RelReportsTo, RelManagerOf.Inverse())
}

func TestRelationValid(t *testing.T) {
	assert.True(t, RelLeftOf.Valid())
	assert.False(t, Relation("teleports_to").Valid())
}

func TestUnlocked(t *testing.T) {
	t.Run("low linear auto has the base set only", func(t *testing.T) {
		unlocked := Unlocked(DifficultyLow, ProfileAuto, SeatingLinear)

		assert.Contains(t, unlocked, RelParentOf)
		assert.Contains(t, unlocked, RelChildOf)
		assert.Contains(t, unlocked, RelLeftOf)
		assert.Contains(t, unlocked, RelRightOf)
		assert.Contains(t, unlocked, RelNeighborOf)
		assert.Contains(t, unlocked, RelFriendOf)
		assert.Contains(t, unlocked, RelCoworkerOf)

		assert.NotContains(t, unlocked, RelSiblingOf)
		assert.NotContains(t, unlocked, RelMentorOf)
		assert.NotContains(t, unlocked, RelManagerOf)
		assert.NotContains(t, unlocked, RelTwoLeftOf)
		assert.NotContains(t, unlocked, RelClockwiseOf)
	})

	t.Run("medium adds symmetric ties and mentorship", func(t *testing.T) {
		unlocked := Unlocked(DifficultyMedium, ProfileAuto, SeatingLinear)

		assert.Contains(t, unlocked, RelSiblingOf)
		assert.Contains(t, unlocked, RelCousinOf)
		assert.Contains(t, unlocked, RelSpouseOf)
		assert.Contains(t, unlocked, RelClassmateOf)
		assert.Contains(t, unlocked, RelMentorOf)
		assert.Contains(t, unlocked, RelMenteeOf)
		assert.NotContains(t, unlocked, RelRivalOf)
	})

	t.Run("high circular unlocks everything", func(t *testing.T) {
		unlocked := Unlocked(DifficultyHigh, ProfileAll, SeatingCircular)
		assert.ElementsMatch(t, AllRelations(), unlocked)
	})

	t.Run("circular-only relations never unlock on linear seatings", func(t *testing.T) {
		unlocked := Unlocked(DifficultyHigh, ProfileAll, SeatingLinear)
		assert.NotContains(t, unlocked, RelClockwiseOf)
		assert.NotContains(t, unlocked, RelCounterclockOf)
		assert.NotContains(t, unlocked, RelAcrossFrom)
		assert.Contains(t, unlocked, RelTwoLeftOf)
	})

	t.Run("social profile excludes spatial relations", func(t *testing.T) {
		unlocked := Unlocked(DifficultyHigh, ProfileSocial, SeatingCircular)
		for _, r := range unlocked {
			assert.NotEqual(t, CategorySpatial, r.Category(), "relation %s", r)
		}
		assert.Contains(t, unlocked, RelParentOf)
		assert.Contains(t, unlocked, RelRivalOf)
	})

	t.Run("spatial profile excludes social and genealogical relations", func(t *testing.T) {
		unlocked := Unlocked(DifficultyHigh, ProfileSpatial, SeatingCircular)
		for _, r := range unlocked {
			assert.Equal(t, CategorySpatial, r.Category(), "relation %s", r)
		}
		assert.Contains(t, unlocked, RelLeftOf)
		assert.Contains(t, unlocked, RelClockwiseOf)
	})
}
