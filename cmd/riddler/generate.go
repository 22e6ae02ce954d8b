package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ersonp/riddler/internal/application/handlers"
	"github.com/ersonp/riddler/internal/domain/entities"
	"github.com/ersonp/riddler/internal/domain/services"
	"github.com/ersonp/riddler/internal/infrastructure/config"
	"github.com/ersonp/riddler/internal/infrastructure/render"
)

type generateFlags struct {
	people     int
	length     int
	seed       int64
	seating    string
	relations  string
	difficulty string
	format     string
	count      int
	output     string
}

func newGenerateCmd() *cobra.Command {
	var flags generateFlags

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more deduction puzzles",
		Long: "Generates puzzles over a cast of named people: a bidirectional fact graph\n" +
			"with a guaranteed solution path, plus the seating the spatial facts derive from.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, flags)
		},
	}

	cmd.Flags().IntVarP(&flags.people, "people", "p", DefaultPeople, "Number of people to include")
	cmd.Flags().IntVarP(&flags.length, "length", "l", DefaultMinLength, "Minimum solution-path length")
	cmd.Flags().Int64VarP(&flags.seed, "seed", "s", 0, "Random seed for reproducible output")
	cmd.Flags().StringVar(&flags.seating, "seating", "", "Force a seating layout (linear, circular)")
	cmd.Flags().StringVarP(&flags.relations, "relations", "r", "", "Relation profile (auto, social, spatial, all)")
	cmd.Flags().StringVarP(&flags.difficulty, "difficulty", "d", "", "Difficulty tier (low, medium, high)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format (json, text, dot)")
	cmd.Flags().IntVarP(&flags.count, "count", "c", 1, "Number of puzzles to generate (seeds increment)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file, or directory when count > 1 (default: stdout)")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags generateFlags) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyDefaults(cmd, &flags, cfg)

	if !contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}
	if flags.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", flags.count)
	}

	req := handlers.GenerateRequest{
		People:      flags.people,
		MinPathLen:  flags.length,
		SeatingKind: flags.seating,
		Profile:     flags.relations,
		Difficulty:  flags.difficulty,
	}
	if cmd.Flags().Changed("seed") {
		seed := flags.seed
		req.Seed = &seed
	}

	handler := handlers.NewGenerateHandler(services.NewGenerator())
	puzzles, err := handler.HandleBatch(req, flags.count)
	if err != nil {
		return err
	}

	return writePuzzles(puzzles, flags.format, flags.output)
}

// applyDefaults fills flags the user left unset from the loaded config.
func applyDefaults(cmd *cobra.Command, flags *generateFlags, cfg *config.Config) {
	if !cmd.Flags().Changed("people") && cfg.Defaults.People > 0 {
		flags.people = cfg.Defaults.People
	}
	if !cmd.Flags().Changed("length") && cfg.Defaults.Length > 0 {
		flags.length = cfg.Defaults.Length
	}
	if flags.difficulty == "" {
		flags.difficulty = cfg.Defaults.Difficulty
	}
	if flags.relations == "" {
		flags.relations = cfg.Defaults.Relations
	}
	if flags.seating == "" {
		flags.seating = cfg.Defaults.Seating
	}
	if flags.format == "" {
		flags.format = cfg.Defaults.Format
	}
}

func writePuzzles(puzzles []*entities.Puzzle, format, output string) error {
	if output == "" {
		for _, puzzle := range puzzles {
			// Colorize only interactive text output.
			if err := writePuzzle(os.Stdout, puzzle, format, format == "text"); err != nil {
				return err
			}
		}
		return nil
	}

	if len(puzzles) == 1 {
		if err := writePuzzleFile(output, puzzles[0], format); err != nil {
			return err
		}
		fmt.Printf("Wrote puzzle to %s\n", output)
		return nil
	}

	if err := os.MkdirAll(output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	for i, puzzle := range puzzles {
		path := filepath.Join(output, numberedFilename(i+1, format))
		if err := writePuzzleFile(path, puzzle, format); err != nil {
			return err
		}
	}
	fmt.Printf("Wrote %d puzzles to %s\n", len(puzzles), output)
	return nil
}

func writePuzzleFile(path string, puzzle *entities.Puzzle, format string) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()
	return writePuzzle(f, puzzle, format, false)
}

func writePuzzle(w io.Writer, puzzle *entities.Puzzle, format string, color bool) error {
	switch format {
	case "json":
		return render.WriteJSON(w, puzzle)
	case "text":
		return render.WriteText(w, puzzle, color)
	case "dot":
		return render.WriteDOT(w, puzzle)
	default:
		return fmt.Errorf("invalid format %q, valid formats: %v", format, validFormats)
	}
}

// numberedFilename names the i-th puzzle file in a batch.
func numberedFilename(i int, format string) string {
	ext := format
	if format == "text" {
		ext = "txt"
	}
	return fmt.Sprintf("puzzle_%03d.%s", i, ext)
}
