package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rdmtools/metatab/pkg/metatab/config"
)

func TestSelectColumnsWhitelist(t *testing.T) {
	cfg := &config.Config{
		IdentifierColumns: []string{"path"},
		ColumnPolicy:      config.PolicyWhitelist,
		Columns:           []string{"project", "owner", "absent"},
	}

	got := SelectColumns([]string{"path", "project", "date", "owner"}, cfg)
	assert.Equal(t, []string{"project", "owner"}, got)
}

func TestSelectColumnsBlacklist(t *testing.T) {
	cfg := &config.Config{
		IdentifierColumns: []string{"path"},
		ColumnPolicy:      config.PolicyBlacklist,
		Columns:           []string{"owner"},
	}

	got := SelectColumns([]string{"path", "project", "date", "owner"}, cfg)
	assert.Equal(t, []string{"project", "date"}, got)
}

func TestSelectColumnsEmptyBlacklistPassesAll(t *testing.T) {
	cfg := &config.Config{
		IdentifierColumns: []string{"path"},
		ColumnPolicy:      config.PolicyBlacklist,
	}

	got := SelectColumns([]string{"path", "project", "date"}, cfg)
	assert.Equal(t, []string{"project", "date"}, got)
}

func TestSelectColumnsIdentifierNeverPasses(t *testing.T) {
	columns := []string{"path", "run", "project"}

	// Even a whitelist that names the identifier columns cannot pass them.
	whitelist := &config.Config{
		IdentifierColumns: []string{"path", "run"},
		ColumnPolicy:      config.PolicyWhitelist,
		Columns:           []string{"path", "run", "project"},
	}
	assert.Equal(t, []string{"project"}, SelectColumns(columns, whitelist))

	blacklist := &config.Config{
		IdentifierColumns: []string{"path", "run"},
		ColumnPolicy:      config.PolicyBlacklist,
	}
	assert.Equal(t, []string{"project"}, SelectColumns(columns, blacklist))
}
