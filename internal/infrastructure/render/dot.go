package render

import (
	"fmt"
	"io"

	"github.com/ersonp/riddler/internal/domain/entities"
)

// WriteDOT writes the puzzle's fact graph as a Graphviz digraph over the
// canonical edges, one edge per relation/inverse pair, labeled with the
// canonical relation.
func WriteDOT(w io.Writer, puzzle *entities.Puzzle) error {
	if _, err := fmt.Fprintln(w, "digraph puzzle {"); err != nil {
		return fmt.Errorf("writing dot header: %w", err)
	}
	for _, name := range puzzle.Names {
		fmt.Fprintf(w, "  %q;\n", string(name))
	}
	for _, e := range entities.CanonicalEdges(puzzle.Facts) {
		fmt.Fprintf(w, "  %q -> %q [label=%q];\n", string(e.Subject), string(e.Object), string(e.Relation))
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return fmt.Errorf("writing dot footer: %w", err)
	}
	return nil
}
