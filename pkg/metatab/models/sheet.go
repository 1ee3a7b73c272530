package models

// Row is one tabular record: column name to cell value. Column order is
// owned by the enclosing Sheet so heterogeneous rows stay comparable.
type Row struct {
	// Cells maps column name to the typed cell value.
	Cells map[string]Cell
}

// Cell returns the value of the named column, or an empty cell when the
// column is absent from this row.
func (r Row) Cell(column string) Cell {
	if c, ok := r.Cells[column]; ok {
		return c
	}
	return EmptyCell()
}

// Sheet is one named table of rows sharing a header.
type Sheet struct {
	// Name is the sheet name; flat text files use the implicit "single_sheet".
	Name string
	// HeaderRow is the 1-based file row the header sits on. Sheets that
	// start with blank rows have a header below row 1; zero means row 1.
	HeaderRow int
	// Columns is the header, in file order.
	Columns []string
	// Rows are the data rows, in file order.
	Rows []Row
}

// RowNumber returns the file row number of the i-th data row.
func (s *Sheet) RowNumber(i int) int {
	header := s.HeaderRow
	if header == 0 {
		header = 1
	}
	return header + 1 + i
}

// HasColumn reports whether the header contains the named column.
func (s *Sheet) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}
