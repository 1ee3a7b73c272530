// Package source parses tabular files (xlsx, csv, tsv) into datasets of
// typed cells. It normalizes cell typing at the boundary so the engine
// never does format-specific sniffing.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// SingleSheetName is the implicit sheet name given to flat text files.
const SingleSheetName = "single_sheet"

// ErrUnsupportedFormat indicates a file extension the loader cannot parse.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Options configures parsing of the tabular source.
type Options struct {
	// Separator is the field separator for .csv files. Zero means comma.
	// Ignored for .xlsx and .tsv.
	Separator rune
}

// DefaultOptions returns default parsing options.
func DefaultOptions() Options {
	return Options{Separator: ','}
}

// Load parses the file at path into a Dataset. The format is chosen by
// extension: .xlsx, .csv and .tsv are accepted.
func Load(path string, opts Options) (*models.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return loadWorkbook(path)
	case ".csv":
		sep := opts.Separator
		if sep == 0 {
			sep = ','
		}
		return loadDelimited(path, sep)
	case ".tsv":
		return loadDelimited(path, '\t')
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
