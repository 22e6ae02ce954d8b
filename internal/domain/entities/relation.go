package entities

import "fmt"

// Category groups relations by the kind of claim they make.
type Category string

const (
	CategorySocial       Category = "social"
	CategorySpatial      Category = "spatial"
	CategoryGenealogical Category = "genealogical"
)

// Relation is a closed vocabulary of relation kinds. Every relation has a
// category, an inverse (possibly itself), a canonical representative shared
// with its inverse, and a difficulty tier that unlocks it.
type Relation string

const (
	// Genealogical.
	RelParentOf  Relation = "parent_of"
	RelChildOf   Relation = "child_of"
	RelSiblingOf Relation = "sibling_of"
	RelCousinOf  Relation = "cousin_of"
	RelSpouseOf  Relation = "spouse_of"

	// Social.
	RelFriendOf    Relation = "friend_of"
	RelCoworkerOf  Relation = "coworker_of"
	RelClassmateOf Relation = "classmate_of"
	RelMentorOf    Relation = "mentor_of"
	RelMenteeOf    Relation = "mentee_of"
	RelManagerOf   Relation = "manager_of"
	RelReportsTo   Relation = "reports_to"
	RelRivalOf     Relation = "rival_of"

	// Spatial.
	RelLeftOf         Relation = "left_of"
	RelRightOf        Relation = "right_of"
	RelNeighborOf     Relation = "neighbor_of"
	RelTwoLeftOf      Relation = "two_left_of"
	RelTwoRightOf     Relation = "two_right_of"
	RelClockwiseOf    Relation = "clockwise_of"
	RelCounterclockOf Relation = "counterclockwise_of"
	RelAcrossFrom     Relation = "across_from"
)

// relationInfo is the static catalog entry for one relation kind.
type relationInfo struct {
	category  Category
	inverse   Relation
	canonical Relation
	tier      Difficulty
	// circularOnly marks spatial relations that only exist on circular
	// seatings (they wrap around the table).
	circularOnly bool
	// kinship names the mutual-exclusivity group for genealogical
	// relations: a pair of people holds at most one kinship group.
	kinship string
}

var catalog = map[Relation]relationInfo{
	RelParentOf:  {CategoryGenealogical, RelChildOf, RelParentOf, DifficultyLow, false, "parent_child"},
	RelChildOf:   {CategoryGenealogical, RelParentOf, RelParentOf, DifficultyLow, false, "parent_child"},
	RelSiblingOf: {CategoryGenealogical, RelSiblingOf, RelSiblingOf, DifficultyMedium, false, "sibling"},
	RelCousinOf:  {CategoryGenealogical, RelCousinOf, RelCousinOf, DifficultyMedium, false, "cousin"},
	RelSpouseOf:  {CategoryGenealogical, RelSpouseOf, RelSpouseOf, DifficultyMedium, false, "spouse"},

	RelFriendOf:    {CategorySocial, RelFriendOf, RelFriendOf, DifficultyLow, false, ""},
	RelCoworkerOf:  {CategorySocial, RelCoworkerOf, RelCoworkerOf, DifficultyLow, false, ""},
	RelClassmateOf: {CategorySocial, RelClassmateOf, RelClassmateOf, DifficultyMedium, false, ""},
	RelMentorOf:    {CategorySocial, RelMenteeOf, RelMentorOf, DifficultyMedium, false, ""},
	RelMenteeOf:    {CategorySocial, RelMentorOf, RelMentorOf, DifficultyMedium, false, ""},
	RelManagerOf:   {CategorySocial, RelReportsTo, RelManagerOf, DifficultyHigh, false, ""},
	RelReportsTo:   {CategorySocial, RelManagerOf, RelManagerOf, DifficultyHigh, false, ""},
	RelRivalOf:     {CategorySocial, RelRivalOf, RelRivalOf, DifficultyHigh, false, ""},

	RelLeftOf:         {CategorySpatial, RelRightOf, RelLeftOf, DifficultyLow, false, ""},
	RelRightOf:        {CategorySpatial, RelLeftOf, RelLeftOf, DifficultyLow, false, ""},
	RelNeighborOf:     {CategorySpatial, RelNeighborOf, RelNeighborOf, DifficultyLow, false, ""},
	RelTwoLeftOf:      {CategorySpatial, RelTwoRightOf, RelTwoLeftOf, DifficultyHigh, false, ""},
	RelTwoRightOf:     {CategorySpatial, RelTwoLeftOf, RelTwoLeftOf, DifficultyHigh, false, ""},
	RelClockwiseOf:    {CategorySpatial, RelCounterclockOf, RelClockwiseOf, DifficultyHigh, true, ""},
	RelCounterclockOf: {CategorySpatial, RelClockwiseOf, RelClockwiseOf, DifficultyHigh, true, ""},
	RelAcrossFrom:     {CategorySpatial, RelAcrossFrom, RelAcrossFrom, DifficultyHigh, true, ""},
}

// relationOrder fixes a stable iteration order over the catalog so that
// generation is reproducible (map iteration order is not).
var relationOrder = []Relation{
	RelParentOf, RelChildOf, RelSiblingOf, RelCousinOf, RelSpouseOf,
	RelFriendOf, RelCoworkerOf, RelClassmateOf, RelMentorOf, RelMenteeOf,
	RelManagerOf, RelReportsTo, RelRivalOf,
	RelLeftOf, RelRightOf, RelNeighborOf, RelTwoLeftOf, RelTwoRightOf,
	RelClockwiseOf, RelCounterclockOf, RelAcrossFrom,
}

func init() {
	if err := CheckCatalog(); err != nil {
		panic(err)
	}
}

// CheckCatalog verifies the catalog invariants: inverse is an involution,
// category is closed under inverse, a relation and its inverse share a
// canonical representative, and the stable order covers the catalog.
func CheckCatalog() error {
	if len(relationOrder) != len(catalog) {
		return fmt.Errorf("relation order lists %d relations, catalog holds %d", len(relationOrder), len(catalog))
	}
	for _, r := range relationOrder {
		info, ok := catalog[r]
		if !ok {
			return fmt.Errorf("relation %q missing from catalog", r)
		}
		inv, ok := catalog[info.inverse]
		if !ok {
			return fmt.Errorf("inverse of %q (%q) missing from catalog", r, info.inverse)
		}
		if inv.inverse != r {
			return fmt.Errorf("inverse of %q is not an involution", r)
		}
		if inv.category != info.category {
			return fmt.Errorf("category of %q not closed under inverse", r)
		}
		if inv.canonical != info.canonical {
			return fmt.Errorf("%q and its inverse disagree on canonical form", r)
		}
		if info.canonical != r && info.canonical != info.inverse {
			return fmt.Errorf("canonical of %q is neither itself nor its inverse", r)
		}
	}
	return nil
}

// AllRelations returns every relation in the catalog in stable order.
func AllRelations() []Relation {
	out := make([]Relation, len(relationOrder))
	copy(out, relationOrder)
	return out
}

// Valid reports whether r is a known relation.
func (r Relation) Valid() bool {
	_, ok := catalog[r]
	return ok
}

// Category returns the relation's category.
func (r Relation) Category() Category { return catalog[r].category }

// Inverse returns the relation that holds in the reverse direction.
func (r Relation) Inverse() Relation { return catalog[r].inverse }

// Canonical returns the preferred representative of the relation/inverse
// pair, used to deduplicate edge summaries.
func (r Relation) Canonical() Relation { return catalog[r].canonical }

// Tier returns the difficulty at which the relation unlocks.
func (r Relation) Tier() Difficulty { return catalog[r].tier }

// SelfInverse reports whether the relation is its own inverse.
func (r Relation) SelfInverse() bool { return catalog[r].inverse == r }

// CircularOnly reports whether the relation only applies to circular
// seatings.
func (r Relation) CircularOnly() bool { return catalog[r].circularOnly }

// KinshipGroup returns the mutual-exclusivity group for genealogical
// relations, or the empty string for relations without one.
func (r Relation) KinshipGroup() string { return catalog[r].kinship }

// Unlocked returns the relations available for the given difficulty,
// profile and seating kind, in stable order. Spatial relations that cannot
// occur on the seating kind (circular-only on a linear seating) are never
// included, regardless of profile.
func Unlocked(d Difficulty, p Profile, kind SeatingKind) []Relation {
	var out []Relation
	for _, r := range relationOrder {
		info := catalog[r]
		if !d.Unlocks(info.tier) {
			continue
		}
		if info.circularOnly && kind != SeatingCircular {
			continue
		}
		switch p {
		case ProfileSocial:
			if info.category == CategorySpatial {
				continue
			}
		case ProfileSpatial:
			if info.category != CategorySpatial {
				continue
			}
		case ProfileAuto, ProfileAll:
			// Auto and all unlock every applicable category; the seating
			// kind filter above already narrows spatial relations.
		}
		out = append(out, r)
	}
	return out
}
