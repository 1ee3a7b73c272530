// Package config defines the mapping configuration document: which columns
// identify the target object, how identifiers become store paths, and which
// columns turn into metadata. Documents are captured once (interactively or
// by hand) and stored as YAML.
package config

import "strings"

// IdentifierMode selects how a raw identifier cell becomes a store path.
type IdentifierMode string

const (
	// ModeAbsolute uses the identifier verbatim as an absolute path.
	ModeAbsolute IdentifierMode = "absolute"
	// ModeRelative joins the identifier under the base collection.
	ModeRelative IdentifierMode = "relative"
	// ModeFilename treats the identifier as a file name directly under the
	// base collection.
	ModeFilename IdentifierMode = "filename"
)

// ColumnPolicy selects whitelist or blacklist column filtering.
type ColumnPolicy string

const (
	// PolicyWhitelist passes only the listed columns.
	PolicyWhitelist ColumnPolicy = "whitelist"
	// PolicyBlacklist passes everything except the listed columns.
	PolicyBlacklist ColumnPolicy = "blacklist"
)

// Config drives one engine run. It is immutable for the duration of a run.
type Config struct {
	// Sheets names the sheets to process, in order. Empty means every sheet
	// of the dataset (flat text files expose a single implicit sheet).
	Sheets []string `yaml:"sheets,omitempty"`

	// IdentifierColumns holds the column(s) whose values identify the target
	// object. Multiple columns are trimmed individually and joined with
	// IdentifierJoin before mode-specific resolution.
	IdentifierColumns []string `yaml:"identifier_columns"`

	// IdentifierMode is one of absolute, relative, filename.
	IdentifierMode IdentifierMode `yaml:"identifier_mode"`

	// IdentifierJoin separates composite identifier parts. Defaults to
	// plain concatenation.
	IdentifierJoin string `yaml:"identifier_join,omitempty"`

	// BaseCollection anchors relative and filename resolution. Ignored in
	// absolute mode.
	BaseCollection string `yaml:"base_collection,omitempty"`

	// ColumnPolicy is whitelist or blacklist; defaults to blacklist with an
	// empty Columns list, which passes every non-identifier column.
	ColumnPolicy ColumnPolicy `yaml:"column_policy,omitempty"`

	// Columns is the set of column names the policy applies to.
	Columns []string `yaml:"columns,omitempty"`

	// Renames maps an original column name to the attribute name written to
	// the store. Identity when absent.
	Renames map[string]string `yaml:"renames,omitempty"`
}

// IsIdentifierColumn reports whether the named column is (part of) the
// configured identifier. Identifier columns never become metadata.
func (c *Config) IsIdentifierColumn(name string) bool {
	for _, col := range c.IdentifierColumns {
		if col == name {
			return true
		}
	}
	return false
}

// AttributeName returns the attribute name a column's values are written
// under: the configured rename target if present, else the column name.
func (c *Config) AttributeName(column string) string {
	if target, ok := c.Renames[column]; ok {
		return target
	}
	return column
}

// RequiresBase reports whether the identifier mode needs a base collection.
func (c *Config) RequiresBase() bool {
	return c.IdentifierMode == ModeRelative || c.IdentifierMode == ModeFilename
}

// Validate checks the presence and coherence of required fields. It is
// called once before any row is processed; a failure aborts the whole run.
func (c *Config) Validate() error {
	if len(c.IdentifierColumns) == 0 {
		return &ConfigurationError{Field: "identifier_columns", Reason: "at least one identifier column is required"}
	}
	for _, col := range c.IdentifierColumns {
		if strings.TrimSpace(col) == "" {
			return &ConfigurationError{Field: "identifier_columns", Reason: "identifier column names must not be blank"}
		}
	}
	switch c.IdentifierMode {
	case ModeAbsolute, ModeRelative, ModeFilename:
	case "":
		return &ConfigurationError{Field: "identifier_mode", Reason: "identifier mode is required"}
	default:
		return &ConfigurationError{Field: "identifier_mode", Reason: "must be absolute, relative or filename"}
	}
	if c.RequiresBase() {
		if c.BaseCollection == "" {
			return &ConfigurationError{Field: "base_collection", Reason: "required for relative and filename modes"}
		}
		if !strings.HasPrefix(c.BaseCollection, "/") {
			return &ConfigurationError{Field: "base_collection", Reason: "must be an absolute path"}
		}
	}
	switch c.ColumnPolicy {
	case PolicyWhitelist, PolicyBlacklist, "":
	default:
		return &ConfigurationError{Field: "column_policy", Reason: "must be whitelist or blacklist"}
	}
	return nil
}
