package entities

import (
	"fmt"
	"sort"
	"strings"
)

// Puzzle is the root aggregate of one generation run. It owns the people,
// the full bidirectional fact list, the seating and the solution path
// (fact ids into Facts), plus two presentation-only views consumed by
// serializers. Puzzles are immutable after construction.
type Puzzle struct {
	Names            []Person `json:"names"`
	Facts            []Fact   `json:"facts"`
	Seating          Seating  `json:"seating"`
	SolutionPath     []string `json:"solution_path"`
	GraphDescription string   `json:"graph_description"`
	SolutionSummary  []string `json:"solution_summary"`
}

// FactByID returns the fact with the given id and whether it exists.
func (p *Puzzle) FactByID(id string) (Fact, bool) {
	for _, f := range p.Facts {
		if f.ID == id {
			return f, true
		}
	}
	return Fact{}, false
}

// CanonicalEdges reduces the fact list to one representative per
// relation/inverse pair, each expressed in its canonical direction.
// Self-inverse relations are oriented by name order so both emitted
// directions collapse to one edge. The result is sorted by subject,
// relation and object.
func CanonicalEdges(facts []Fact) []Fact {
	type edgeKey struct {
		subj Person
		rel  Relation
		obj  Person
	}
	dedup := make(map[edgeKey]Fact, len(facts))
	for _, f := range facts {
		rel := f.Relation.Canonical()
		subj, obj := f.Subject, f.Object
		if rel != f.Relation {
			subj, obj = obj, subj
		}
		if rel.SelfInverse() && subj > obj {
			subj, obj = obj, subj
		}
		key := edgeKey{subj, rel, obj}
		if _, ok := dedup[key]; ok {
			continue
		}
		dedup[key] = Fact{ID: f.ID, Subject: subj, Relation: rel, Object: obj}
	}

	out := make([]Fact, 0, len(dedup))
	for _, f := range dedup {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Subject != out[j].Subject {
			return out[i].Subject < out[j].Subject
		}
		if out[i].Relation != out[j].Relation {
			return out[i].Relation < out[j].Relation
		}
		return out[i].Object < out[j].Object
	})
	return out
}

// DescribeGraph renders the canonical edges as one "Subj:rel -> Obj" line
// per edge, deduplicating each relation/inverse pair.
func DescribeGraph(facts []Fact) string {
	edges := CanonicalEdges(facts)
	lines := make([]string, len(edges))
	for i, e := range edges {
		lines[i] = DescribeFact(e)
	}
	return strings.Join(lines, "\n")
}

// DescribeFact renders a single fact as "Subj:rel -> Obj".
func DescribeFact(f Fact) string {
	return fmt.Sprintf("%s:%s -> %s", f.Subject, f.Relation, f.Object)
}

// SummarizePath renders the solution-path facts, in path order, as
// human-readable lines. Unknown ids are skipped.
func SummarizePath(facts []Fact, pathIDs []string) []string {
	byID := make(map[string]Fact, len(facts))
	for _, f := range facts {
		byID[f.ID] = f
	}
	summary := make([]string, 0, len(pathIDs))
	for _, id := range pathIDs {
		f, ok := byID[id]
		if !ok {
			continue
		}
		summary = append(summary, DescribeFact(f))
	}
	return summary
}
