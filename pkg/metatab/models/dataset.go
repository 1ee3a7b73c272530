package models

// Dataset is a parsed tabular file: an ordered collection of sheets.
type Dataset struct {
	// FileName is the source file name (no path).
	FileName string
	// Sheets holds the sheets in workbook order.
	Sheets []Sheet
}

// Sheet returns the named sheet, or nil when absent.
func (d *Dataset) Sheet(name string) *Sheet {
	for i := range d.Sheets {
		if d.Sheets[i].Name == name {
			return &d.Sheets[i]
		}
	}
	return nil
}

// SheetNames returns all sheet names in workbook order.
func (d *Dataset) SheetNames() []string {
	names := make([]string, len(d.Sheets))
	for i := range d.Sheets {
		names[i] = d.Sheets[i].Name
	}
	return names
}
