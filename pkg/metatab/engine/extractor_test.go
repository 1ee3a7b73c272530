package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdmtools/metatab/pkg/metatab/config"
	"github.com/rdmtools/metatab/pkg/metatab/models"
)

func TestExtractMetadataSkipsEmptyCells(t *testing.T) {
	cfg := &config.Config{}
	row := models.Row{Cells: map[string]models.Cell{
		"project": models.TextCell("X"),
		"owner":   models.EmptyCell(),
		"note":    models.TextCell(""),
	}}

	set := ExtractMetadata(row, []string{"project", "owner", "note"}, cfg)
	require.Equal(t, 1, set.Len())
	value, ok := set.Get("project")
	require.True(t, ok)
	assert.Equal(t, "X", value)
}

func TestExtractMetadataRenames(t *testing.T) {
	cfg := &config.Config{Renames: map[string]string{"proj": "project"}}
	row := models.Row{Cells: map[string]models.Cell{
		"proj":  models.TextCell("X"),
		"owner": models.TextCell("alice"),
	}}

	set := ExtractMetadata(row, []string{"proj", "owner"}, cfg)
	assert.Equal(t, []models.AVU{
		{Name: "project", Value: "X"},
		{Name: "owner", Value: "alice"},
	}, set.Pairs())
}

func TestExtractMetadataDuplicateRenameLastWins(t *testing.T) {
	cfg := &config.Config{Renames: map[string]string{"a": "x", "b": "x"}}
	row := models.Row{Cells: map[string]models.Cell{
		"a": models.TextCell("first"),
		"b": models.TextCell("second"),
	}}

	// b appears after a in row order, so its value wins.
	set := ExtractMetadata(row, []string{"a", "b"}, cfg)
	require.Equal(t, 1, set.Len())
	value, _ := set.Get("x")
	assert.Equal(t, "second", value)
}

func TestExtractMetadataCanonicalValues(t *testing.T) {
	cfg := &config.Config{}
	row := models.Row{Cells: map[string]models.Cell{
		"count": models.NumberCell(100),
		"ratio": models.NumberCell(2.5),
		"date":  models.DateCell(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
		"when":  models.DateCell(time.Date(2023, 1, 1, 10, 30, 0, 0, time.UTC)),
	}}

	set := ExtractMetadata(row, []string{"count", "ratio", "date", "when"}, cfg)
	assert.Equal(t, []models.AVU{
		{Name: "count", Value: "100"},
		{Name: "ratio", Value: "2.5"},
		{Name: "date", Value: "2023-01-01"},
		{Name: "when", Value: "2023-01-01T10:30:00Z"},
	}, set.Pairs())
}
