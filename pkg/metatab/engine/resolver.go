package engine

import (
	"fmt"
	"path"
	"strings"

	"github.com/rdmtools/metatab/pkg/metatab/config"
	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// ResolveIdentifier converts a row's identifier column(s) into a canonical
// absolute path in the store hierarchy. It is pure path computation: the
// store is never consulted, and existence of the result is the writer's
// concern.
func ResolveIdentifier(row models.Row, cfg *config.Config) (string, error) {
	parts := make([]string, 0, len(cfg.IdentifierColumns))
	empty := true
	for _, col := range cfg.IdentifierColumns {
		part := strings.TrimSpace(row.Cell(col).Canonical())
		if part != "" {
			empty = false
		}
		parts = append(parts, part)
	}
	// Checked before joining: a non-empty join separator must not turn
	// all-empty cells into a spurious identifier.
	if empty {
		return "", ErrEmptyIdentifier
	}
	raw := strings.Join(parts, cfg.IdentifierJoin)

	switch cfg.IdentifierMode {
	case config.ModeAbsolute:
		return raw, nil
	case config.ModeRelative:
		return joinUnder(cfg.BaseCollection, raw)
	case config.ModeFilename:
		// Only direct children of the base collection are addressable in
		// filename mode; a separator in the value is not a file name.
		if strings.Contains(raw, "/") {
			return "", fmt.Errorf("%w: %q is not a plain file name", ErrInvalidIdentifier, raw)
		}
		return joinUnder(cfg.BaseCollection, raw)
	default:
		return "", fmt.Errorf("%w: unknown identifier mode %q", ErrInvalidIdentifier, cfg.IdentifierMode)
	}
}

// joinUnder joins rel beneath base, rejecting any traversal outside it.
func joinUnder(base, rel string) (string, error) {
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q escapes the base collection", ErrInvalidIdentifier, rel)
		}
	}
	joined := path.Join(base, rel)
	if joined != base && !strings.HasPrefix(joined, base+"/") {
		return "", fmt.Errorf("%w: %q resolves outside %q", ErrInvalidIdentifier, rel, base)
	}
	return joined, nil
}
