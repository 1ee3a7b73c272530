package source

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// loadWorkbook parses an xlsx workbook into a Dataset, one Sheet per
// workbook sheet in workbook order. Sheets without data are omitted.
func loadWorkbook(path string) (*models.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer f.Close()

	ds := &models.Dataset{FileName: filepath.Base(path)}
	for _, sheetName := range f.GetSheetList() {
		grid, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
		}
		if sheet := buildSheet(sheetName, grid); sheet != nil {
			ds.Sheets = append(ds.Sheets, *sheet)
		}
	}
	return ds, nil
}
