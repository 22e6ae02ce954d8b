package render

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/riddler/internal/domain/entities"
)

func testPuzzle() *entities.Puzzle {
	facts := []entities.Fact{
		{ID: "f1", Subject: "Alex", Relation: entities.RelLeftOf, Object: "Sam"},
		{ID: "f2", Subject: "Sam", Relation: entities.RelRightOf, Object: "Alex"},
		{ID: "f3", Subject: "Alex", Relation: entities.RelParentOf, Object: "Sam"},
		{ID: "f4", Subject: "Sam", Relation: entities.RelChildOf, Object: "Alex"},
	}
	return &entities.Puzzle{
		Names: []entities.Person{"Alex", "Sam"},
		Facts: facts,
		Seating: entities.Seating{
			Kind: entities.SeatingLinear,
			Seats: []entities.Seat{
				entities.OccupiedSeat("Alex"),
				entities.EmptySeat(),
				entities.OccupiedSeat("Sam"),
			},
		},
		SolutionPath:     []string{"f1", "f3"},
		GraphDescription: entities.DescribeGraph(facts),
		SolutionSummary:  entities.SummarizePath(facts, []string{"f1", "f3"}),
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, testPuzzle()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "names")
	assert.Contains(t, decoded, "facts")
	assert.Contains(t, decoded, "seating")
	assert.Contains(t, decoded, "solution_path")

	seating, ok := decoded["seating"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"Alex", nil, "Sam"}, seating["seats"])
}

func TestColorizeLine(t *testing.T) {
	t.Run("spatial relations are yellow", func(t *testing.T) {
		line := ColorizeLine("Alex:left_of -> Sam")
		assert.Equal(t, "Alex:\033[33mleft_of\033[0m -> Sam", line)
	})

	t.Run("social relations are blue", func(t *testing.T) {
		line := ColorizeLine("Alex:friend_of -> Sam")
		assert.Equal(t, "Alex:\033[34mfriend_of\033[0m -> Sam", line)
	})

	t.Run("genealogical relations are green", func(t *testing.T) {
		line := ColorizeLine("Alex:parent_of -> Sam")
		assert.Equal(t, "Alex:\033[32mparent_of\033[0m -> Sam", line)
	})

	t.Run("malformed lines pass through", func(t *testing.T) {
		assert.Equal(t, "not a relation line", ColorizeLine("not a relation line"))
		assert.Equal(t, "Alex:unknown_rel -> Sam", ColorizeLine("Alex:unknown_rel -> Sam"))
	})
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, testPuzzle(), false))
	out := buf.String()

	assert.Contains(t, out, "Seating (linear):")
	assert.Contains(t, out, "(empty)")
	assert.Contains(t, out, "Facts:")
	assert.Contains(t, out, "f1: Alex left_of Sam")
	assert.Contains(t, out, "Relations:")
	assert.Contains(t, out, "Solution path IDs:")
	assert.Contains(t, out, "f1, f3")
	assert.Contains(t, out, "Solution summary:")
	assert.NotContains(t, out, "\033[", "plain output must carry no ANSI codes")
}

func TestWriteTextColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, testPuzzle(), true))
	assert.Contains(t, buf.String(), "\033[33mleft_of\033[0m")
}

func TestWriteDOT(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDOT(&buf, testPuzzle()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "digraph puzzle {"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
	assert.Contains(t, out, `"Alex";`)
	// Canonical edges only: one labeled edge per relation/inverse pair.
	assert.Contains(t, out, `"Alex" -> "Sam" [label="left_of"];`)
	assert.Contains(t, out, `"Alex" -> "Sam" [label="parent_of"];`)
	assert.NotContains(t, out, `label="right_of"`)
	assert.NotContains(t, out, `label="child_of"`)
}
