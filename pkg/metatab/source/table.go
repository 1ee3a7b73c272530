package source

import (
	"strings"

	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// buildSheet turns a raw grid into a Sheet: the first non-empty row is the
// header, every following row is data. Columns with a blank header cell are
// dropped; later rows shorter than the header simply leave those cells
// empty. Returns nil when the grid holds no data at all.
func buildSheet(name string, grid [][]string) *models.Sheet {
	headerIdx := firstNonEmptyRow(grid)
	if headerIdx < 0 {
		return nil
	}

	header := grid[headerIdx]
	columns := make([]string, 0, len(header))
	colIndex := make(map[string]int, len(header))
	for i, cell := range header {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, dup := colIndex[cell]; dup {
			continue
		}
		colIndex[cell] = i
		columns = append(columns, cell)
	}
	if len(columns) == 0 {
		return nil
	}

	sheet := &models.Sheet{Name: name, HeaderRow: headerIdx + 1, Columns: columns}
	for _, raw := range grid[headerIdx+1:] {
		row := models.Row{Cells: make(map[string]models.Cell, len(columns))}
		for _, col := range columns {
			i := colIndex[col]
			if i < len(raw) {
				row.Cells[col] = ParseCell(raw[i])
			} else {
				row.Cells[col] = models.EmptyCell()
			}
		}
		sheet.Rows = append(sheet.Rows, row)
	}
	return sheet
}

// firstNonEmptyRow finds the index of the first row with any content.
func firstNonEmptyRow(grid [][]string) int {
	for rowIdx, row := range grid {
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				return rowIdx
			}
		}
	}
	return -1
}
