// Package render serializes puzzles to JSON, colored text and Graphviz DOT.
// All writers read the puzzle's fields only; nothing is mutated.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/riddler/internal/domain/entities"
)

// WriteJSON writes the puzzle as indented JSON.
func WriteJSON(w io.Writer, puzzle *entities.Puzzle) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(puzzle); err != nil {
		return fmt.Errorf("encoding puzzle: %w", err)
	}
	return nil
}
