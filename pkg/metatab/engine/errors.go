// Package engine implements the configuration-driven resolution and
// extraction core: each row of a dataset resolves to at most one store path
// and a validated metadata set, with per-row failures isolated so that one
// malformed row never blocks the rest of the dataset.
package engine

import (
	"errors"
	"fmt"

	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// ErrEmptyIdentifier indicates a row whose identifier cell(s) are empty.
var ErrEmptyIdentifier = errors.New("empty identifier")

// ErrInvalidIdentifier indicates an identifier that cannot form a valid
// store path, such as one escaping the base collection.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// WriteError wraps a failure reported by the writer for one resolved row.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write to %q failed: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// failureReason maps a per-row error to its report reason string.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrEmptyIdentifier):
		return models.ReasonEmptyIdentifier
	case errors.Is(err, ErrInvalidIdentifier):
		return models.ReasonInvalidIdentifier
	default:
		return models.ReasonWriteError
	}
}
