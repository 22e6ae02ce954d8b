// Package handlers bridges the CLI and the domain services.
package handlers

import (
	"fmt"

	"github.com/ersonp/riddler/internal/domain/entities"
	"github.com/ersonp/riddler/internal/domain/services"
)

// GenerateRequest carries raw generation parameters as parsed from flags.
type GenerateRequest struct {
	People      int
	MinPathLen  int
	Seed        *int64
	SeatingKind string
	Profile     string
	Difficulty  string
}

// GenerateHandler handles puzzle generation requests.
type GenerateHandler struct {
	generator *services.Generator
}

// NewGenerateHandler creates a new generate handler.
func NewGenerateHandler(generator *services.Generator) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
	}
}

// Handle parses the request's string-valued options and runs one
// generation. Validation failures surface before any generation work.
func (h *GenerateHandler) Handle(req GenerateRequest) (*entities.Puzzle, error) {
	if req.Difficulty == "" {
		req.Difficulty = string(entities.DifficultyLow)
	}
	difficulty, err := entities.ParseDifficulty(req.Difficulty)
	if err != nil {
		return nil, err
	}
	profile, err := entities.ParseProfile(req.Profile)
	if err != nil {
		return nil, err
	}
	var kind entities.SeatingKind
	if req.SeatingKind != "" {
		kind, err = entities.ParseSeatingKind(req.SeatingKind)
		if err != nil {
			return nil, err
		}
	}

	puzzle, err := h.generator.Generate(services.Params{
		People:      req.People,
		MinPathLen:  req.MinPathLen,
		Seed:        req.Seed,
		SeatingKind: kind,
		Profile:     profile,
		Difficulty:  difficulty,
	})
	if err != nil {
		return nil, fmt.Errorf("generating puzzle: %w", err)
	}
	return puzzle, nil
}

// HandleBatch runs count independent generations with incrementing seeds.
// When the request carries no seed, every puzzle gets its own internally
// chosen seed.
func (h *GenerateHandler) HandleBatch(req GenerateRequest, count int) ([]*entities.Puzzle, error) {
	if count < 1 {
		return nil, fmt.Errorf("batch count must be at least 1, got %d", count)
	}
	puzzles := make([]*entities.Puzzle, 0, count)
	for i := 0; i < count; i++ {
		r := req
		if req.Seed != nil {
			seed := *req.Seed + int64(i)
			r.Seed = &seed
		}
		puzzle, err := h.Handle(r)
		if err != nil {
			return nil, fmt.Errorf("puzzle %d of %d: %w", i+1, count, err)
		}
		puzzles = append(puzzles, puzzle)
	}
	return puzzles, nil
}
