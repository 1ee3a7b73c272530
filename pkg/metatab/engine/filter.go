package engine

import (
	"github.com/rdmtools/metatab/pkg/metatab/config"
)

// SelectColumns decides which of a row's columns become metadata
// candidates. The result preserves the original column order, which the
// extractor relies on for deterministic duplicate-rename resolution.
// Identifier columns never pass, regardless of policy. Configured columns
// absent from the sheet are simply not matched; heterogeneous sheets are
// the caller's responsibility to log.
func SelectColumns(columns []string, cfg *config.Config) []string {
	listed := make(map[string]struct{}, len(cfg.Columns))
	for _, c := range cfg.Columns {
		listed[c] = struct{}{}
	}

	var selected []string
	for _, col := range columns {
		if cfg.IsIdentifierColumn(col) {
			continue
		}
		_, inList := listed[col]
		switch cfg.ColumnPolicy {
		case config.PolicyWhitelist:
			if inList {
				selected = append(selected, col)
			}
		default:
			if !inList {
				selected = append(selected, col)
			}
		}
	}
	return selected
}
