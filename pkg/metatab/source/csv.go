package source

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// loadDelimited parses a csv or tsv file into a Dataset with one implicit
// sheet named SingleSheetName.
func loadDelimited(path string, comma rune) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = comma
	// Ragged rows are tolerated: shorter rows leave trailing cells empty.
	r.FieldsPerRecord = -1

	grid, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ds := &models.Dataset{FileName: filepath.Base(path)}
	if sheet := buildSheet(SingleSheetName, grid); sheet != nil {
		ds.Sheets = append(ds.Sheets, *sheet)
	}
	return ds, nil
}
