package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rdmtools/metatab/pkg/metatab/models"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeTempFile(t, "samples.csv",
		"path,project,date\n"+
			"/zone/home/a.txt,X,2023-01-01\n"+
			"/zone/home/b.txt,Y\n")

	ds, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(ds.Sheets) != 1 || ds.Sheets[0].Name != SingleSheetName {
		t.Fatalf("Expected single implicit sheet, got %+v", ds.SheetNames())
	}
	sheet := &ds.Sheets[0]
	if len(sheet.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(sheet.Rows))
	}

	if got := sheet.Rows[0].Cell("date"); got.Kind != models.KindDate {
		t.Errorf("Expected date cell, got %+v", got)
	}
	// The ragged second row leaves the missing trailing cell empty.
	if got := sheet.Rows[1].Cell("date"); !got.IsEmpty() {
		t.Errorf("Expected empty date in ragged row, got %+v", got)
	}
}

func TestLoadTSV(t *testing.T) {
	path := writeTempFile(t, "samples.tsv", "path\tproject\n/zone/home/a.txt\tX\n")

	ds, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := ds.Sheets[0].Rows[0].Cell("project").Text; got != "X" {
		t.Errorf("Expected X, got %q", got)
	}
}

func TestLoadCSVCustomSeparator(t *testing.T) {
	path := writeTempFile(t, "samples.csv", "path;project\n/zone/home/a.txt;X\n")

	ds, err := Load(path, Options{Separator: ';'})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := ds.Sheets[0].Columns; len(got) != 2 {
		t.Errorf("Expected 2 columns, got %v", got)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	path := writeTempFile(t, "samples.parquet", "")

	_, err := Load(path, DefaultOptions())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadEmptyCSV(t *testing.T) {
	path := writeTempFile(t, "empty.csv", "")

	ds, err := Load(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(ds.Sheets) != 0 {
		t.Errorf("Expected no sheets, got %d", len(ds.Sheets))
	}
}
