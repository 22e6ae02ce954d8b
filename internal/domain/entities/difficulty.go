package entities

import "fmt"

// Difficulty gates which relations are unlocked and how many empty seats
// a seating may contain.
type Difficulty string

const (
	DifficultyLow    Difficulty = "low"
	DifficultyMedium Difficulty = "medium"
	DifficultyHigh   Difficulty = "high"
)

var difficultyRank = map[Difficulty]int{
	DifficultyLow:    0,
	DifficultyMedium: 1,
	DifficultyHigh:   2,
}

// ParseDifficulty converts a string flag value into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if _, ok := difficultyRank[d]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}

// Unlocks reports whether relations of the given tier are available at
// this difficulty.
func (d Difficulty) Unlocks(tier Difficulty) bool {
	return difficultyRank[d] >= difficultyRank[tier]
}

// EmptySeatRange returns the inclusive bounds on the number of sentinel
// empty seats a seating may hold at this difficulty.
func (d Difficulty) EmptySeatRange() (min, max int) {
	switch d {
	case DifficultyMedium:
		return 1, 1
	case DifficultyHigh:
		return 1, 2
	default:
		return 0, 0
	}
}

// Profile narrows the unlocked relation catalog to a category subset.
type Profile string

const (
	ProfileAuto    Profile = "auto"
	ProfileSocial  Profile = "social"
	ProfileSpatial Profile = "spatial"
	ProfileAll     Profile = "all"
)

// ParseProfile converts a string flag value into a Profile. The empty
// string resolves to ProfileAuto.
func ParseProfile(s string) (Profile, error) {
	if s == "" {
		return ProfileAuto, nil
	}
	switch p := Profile(s); p {
	case ProfileAuto, ProfileSocial, ProfileSpatial, ProfileAll:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidProfile, s)
	}
}
