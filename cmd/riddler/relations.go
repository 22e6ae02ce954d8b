package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/riddler/internal/domain/entities"
)

func newRelationsCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "relations",
		Short: "List the relation catalog",
		Long:  "Lists every relation kind with its category, inverse and unlock tier.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRelations(difficulty)
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "", "Only show relations unlocked at this tier")

	return cmd
}

func runRelations(difficulty string) error {
	var gate *entities.Difficulty
	if difficulty != "" {
		d, err := entities.ParseDifficulty(difficulty)
		if err != nil {
			return err
		}
		gate = &d
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RELATION\tCATEGORY\tINVERSE\tTIER")
	for _, r := range entities.AllRelations() {
		if gate != nil && !gate.Unlocks(r.Tier()) {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r, r.Category(), r.Inverse(), r.Tier())
	}
	return w.Flush()
}
