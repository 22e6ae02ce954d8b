package services

import (
	"fmt"
	"math/rand"

	"github.com/ersonp/riddler/internal/domain/entities"
)

// factGraph is the undirected multigraph implicit in a fact list: nodes are
// people, edges are facts. Inverse facts are edges of their own, so both
// directions of every relation are present.
type factGraph struct {
	facts    []entities.Fact
	incident map[entities.Person][]int
	// people in first-appearance order; map iteration order would break
	// reproducibility.
	people []entities.Person
}

func newFactGraph(facts []entities.Fact) *factGraph {
	g := &factGraph{
		facts:    facts,
		incident: make(map[entities.Person][]int),
	}
	add := func(p entities.Person, i int) {
		if _, ok := g.incident[p]; !ok {
			g.people = append(g.people, p)
		}
		g.incident[p] = append(g.incident[p], i)
	}
	for i, f := range facts {
		add(f.Subject, i)
		add(f.Object, i)
	}
	return g
}

// pathBonusSpan is the exclusive bound on the seeded bonus added to the
// requested minimum path length before relaxing back down to it.
const pathBonusSpan = 3

// selectPath walks the graph from a seeded random start, preferring unused
// facts and backtracking when stuck, until it finds a connected walk of the
// wanted length. A fact is never immediately followed by its own inverse;
// such a step carries no information. Returns ErrPathUnreachable when no
// walk of at least minLen facts exists.
func (g *factGraph) selectPath(rng *rand.Rand, minLen int) ([]string, error) {
	floor := minLen
	if floor < 1 {
		floor = 1
	}
	target := floor + rng.Intn(pathBonusSpan)

	for want := target; want >= floor; want-- {
		starts := make([]entities.Person, len(g.people))
		copy(starts, g.people)
		rng.Shuffle(len(starts), func(i, j int) {
			starts[i], starts[j] = starts[j], starts[i]
		})
		for _, start := range starts {
			used := make([]bool, len(g.facts))
			path := make([]int, 0, want)
			if g.walk(rng, start, -1, used, &path, want) {
				ids := make([]string, len(path))
				for i, f := range path {
					ids[i] = g.facts[f].ID
				}
				return ids, nil
			}
		}
	}

	if minLen == 0 {
		return []string{}, nil
	}
	return nil, fmt.Errorf("%w: requested %d, graph holds %d facts",
		entities.ErrPathUnreachable, minLen, len(g.facts))
}

// walk extends the path from current by one unused, non-reversing fact and
// recurses; it undoes the step when the extension cannot reach the wanted
// length.
func (g *factGraph) walk(rng *rand.Rand, current entities.Person, prev int, used []bool, path *[]int, want int) bool {
	if len(*path) == want {
		return true
	}
	var cands []int
	for _, i := range g.incident[current] {
		if used[i] {
			continue
		}
		if prev >= 0 && g.facts[i].InverseOf(g.facts[prev]) {
			continue
		}
		cands = append(cands, i)
	}
	rng.Shuffle(len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})
	for _, c := range cands {
		used[c] = true
		*path = append(*path, c)
		if g.walk(rng, g.facts[c].Other(current), c, used, path, want) {
			return true
		}
		*path = (*path)[:len(*path)-1]
		used[c] = false
	}
	return false
}
