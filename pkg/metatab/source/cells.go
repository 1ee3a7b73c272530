package source

import (
	"strconv"
	"strings"
	"time"

	"github.com/rdmtools/metatab/pkg/metatab/models"
)

// dateLayouts are the date formats recognized in cells, tried in order.
// Ambiguous regional formats (1/2/2006 vs 2/1/2006) are deliberately not
// guessed at.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseCell converts a raw cell string into a typed cell.
// Numbers are recognized before dates; anything else stays text.
func ParseCell(s string) models.Cell {
	if s == "" {
		return models.EmptyCell()
	}

	// A leading zero usually marks a formatted identifier ("007"), not a
	// number; coercing it would mangle the value.
	if !hasLeadingZero(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return models.NumberCell(float64(i))
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return models.NumberCell(f)
		}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return models.DateCell(t)
		}
	}

	return models.TextCell(s)
}

func hasLeadingZero(s string) bool {
	trimmed := strings.TrimLeft(s, "+-")
	return len(trimmed) > 1 && trimmed[0] == '0' && trimmed[1] != '.'
}
