package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ersonp/riddler/internal/domain/entities"
)

// ANSI colors per relation category.
const (
	colorSocial       = "\033[34m" // blue
	colorSpatial      = "\033[33m" // yellow
	colorGenealogical = "\033[32m" // green
	colorReset        = "\033[0m"
)

func categoryColor(c entities.Category) string {
	switch c {
	case entities.CategorySocial:
		return colorSocial
	case entities.CategorySpatial:
		return colorSpatial
	case entities.CategoryGenealogical:
		return colorGenealogical
	default:
		return ""
	}
}

// ColorizeLine wraps the relation in a "Subj:rel -> Obj" line with its
// category color. Lines that don't match the shape pass through unchanged.
func ColorizeLine(line string) string {
	subj, rest, ok := strings.Cut(line, ":")
	if !ok {
		return line
	}
	relStr, obj, ok := strings.Cut(rest, " -> ")
	if !ok {
		return line
	}
	rel := entities.Relation(relStr)
	if !rel.Valid() {
		return line
	}
	color := categoryColor(rel.Category())
	if color == "" {
		return line
	}
	return fmt.Sprintf("%s:%s%s%s -> %s", subj, color, relStr, colorReset, obj)
}

// WriteText writes a human-readable rendition of the puzzle: the seating
// table, the full fact list, the canonical relation summary, and the
// solution path. Colorized relation lines are used when color is true.
func WriteText(w io.Writer, puzzle *entities.Puzzle, color bool) error {
	style := func(line string) string {
		if color {
			return ColorizeLine(line)
		}
		return line
	}

	fmt.Fprintf(w, "Seating (%s):\n", puzzle.Seating.Kind)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for i, seat := range puzzle.Seating.Seats {
		if p, ok := seat.Occupant(); ok {
			fmt.Fprintf(tw, "  %d:\t%s\n", i+1, p)
		} else {
			fmt.Fprintf(tw, "  %d:\t(empty)\n", i+1)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing seating table: %w", err)
	}

	fmt.Fprintln(w, "\nFacts:")
	for _, f := range puzzle.Facts {
		fmt.Fprintf(w, "  %s: %s %s %s\n", f.ID, f.Subject, f.Relation, f.Object)
	}

	if puzzle.GraphDescription != "" {
		fmt.Fprintln(w, "\nRelations:")
		for _, line := range strings.Split(puzzle.GraphDescription, "\n") {
			fmt.Fprintf(w, "  %s\n", style(line))
		}
	}

	fmt.Fprintln(w, "\nSolution path IDs:")
	fmt.Fprintf(w, "  %s\n", strings.Join(puzzle.SolutionPath, ", "))

	if len(puzzle.SolutionSummary) > 0 {
		fmt.Fprintln(w, "\nSolution summary:")
		for _, line := range puzzle.SolutionSummary {
			fmt.Fprintf(w, "  %s\n", style(line))
		}
	}
	return nil
}
