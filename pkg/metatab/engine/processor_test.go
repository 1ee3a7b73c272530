package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdmtools/metatab/pkg/metatab/config"
	"github.com/rdmtools/metatab/pkg/metatab/models"
)

func TestProcessRowResolved(t *testing.T) {
	cfg := &config.Config{
		IdentifierColumns: []string{"path"},
		IdentifierMode:    config.ModeAbsolute,
		ColumnPolicy:      config.PolicyBlacklist,
	}
	columns := []string{"path", "project", "date"}
	row := models.Row{Cells: map[string]models.Cell{
		"path":    models.TextCell("/zone/home/a.txt"),
		"project": models.TextCell("X"),
		"date":    models.DateCell(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)),
	}}

	outcome := ProcessRow(row, columns, cfg)
	require.Equal(t, models.OutcomeResolved, outcome.Kind)
	assert.Equal(t, "/zone/home/a.txt", outcome.Path)
	assert.Equal(t, []models.AVU{
		{Name: "project", Value: "X"},
		{Name: "date", Value: "2023-01-01"},
	}, outcome.Metadata.Pairs())
}

func TestProcessRowEmptyIdentifierShortCircuits(t *testing.T) {
	cfg := &config.Config{
		IdentifierColumns: []string{"path"},
		IdentifierMode:    config.ModeAbsolute,
	}
	row := models.Row{Cells: map[string]models.Cell{
		"path":    models.TextCell(""),
		"project": models.TextCell("X"),
	}}

	outcome := ProcessRow(row, []string{"path", "project"}, cfg)
	require.Equal(t, models.OutcomeFailed, outcome.Kind)
	assert.Equal(t, models.ReasonEmptyIdentifier, outcome.Reason)
	assert.Nil(t, outcome.Metadata)
}

func TestProcessRowNoMetadataIsSkipped(t *testing.T) {
	cfg := &config.Config{
		IdentifierColumns: []string{"path"},
		IdentifierMode:    config.ModeAbsolute,
	}
	row := models.Row{Cells: map[string]models.Cell{
		"path":    models.TextCell("/zone/home/a.txt"),
		"project": models.EmptyCell(),
	}}

	outcome := ProcessRow(row, []string{"path", "project"}, cfg)
	require.Equal(t, models.OutcomeSkipped, outcome.Kind)
	assert.Equal(t, models.ReasonNoMetadata, outcome.Reason)
}

func TestProcessRowRelativeExample(t *testing.T) {
	cfg := &config.Config{
		IdentifierColumns: []string{"file"},
		IdentifierMode:    config.ModeRelative,
		BaseCollection:    "/zone/home/project",
	}
	row := models.Row{Cells: map[string]models.Cell{
		"file":  models.TextCell("sub/file.txt"),
		"owner": models.TextCell("alice"),
	}}

	outcome := ProcessRow(row, []string{"file", "owner"}, cfg)
	require.Equal(t, models.OutcomeResolved, outcome.Kind)
	assert.Equal(t, "/zone/home/project/sub/file.txt", outcome.Path)
}
