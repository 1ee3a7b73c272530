package source

import (
	"testing"
	"time"

	"github.com/rdmtools/metatab/pkg/metatab/models"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Cell
	}{
		{"123", models.NumberCell(123)},
		{"123.45", models.NumberCell(123.45)},
		{"-100", models.NumberCell(-100)},
		{"0.5", models.NumberCell(0.5)},
		{"007", models.TextCell("007")},
		{"hello", models.TextCell("hello")},
		{"", models.EmptyCell()},
		{"2023-01-01", models.DateCell(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))},
		{"2023/01/01", models.DateCell(time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC))},
		{"2023-01-01T10:30:00Z", models.DateCell(time.Date(2023, 1, 1, 10, 30, 0, 0, time.UTC))},
		{"01/02/2023", models.TextCell("01/02/2023")}, // ambiguous, stays text
	}

	for _, tt := range tests {
		result := ParseCell(tt.input)
		if result.Kind != tt.expected.Kind {
			t.Errorf("ParseCell(%q) kind = %v, expected %v", tt.input, result.Kind, tt.expected.Kind)
			continue
		}
		if !result.Date.Equal(tt.expected.Date) || result.Number != tt.expected.Number || result.Text != tt.expected.Text {
			t.Errorf("ParseCell(%q) = %+v, expected %+v", tt.input, result, tt.expected)
		}
	}
}

func TestCellCanonical(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"123", "123"},
		{"2.50", "2.5"},
		{"-0.25", "-0.25"},
		{"2023-01-01", "2023-01-01"},
		{"2023-01-01T10:30:00Z", "2023-01-01T10:30:00Z"},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		got := ParseCell(tt.input).Canonical()
		if got != tt.expected {
			t.Errorf("Canonical(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}
