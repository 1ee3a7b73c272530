// Package models defines the data structures shared across metatab.
package models

import (
	"strconv"
	"time"
)

// CellKind discriminates the value held by a Cell.
type CellKind string

const (
	// KindText is a plain text cell.
	KindText CellKind = "text"
	// KindNumber is a numeric cell (integers and decimals share one kind).
	KindNumber CellKind = "number"
	// KindDate is a calendar date, optionally with a time component.
	KindDate CellKind = "date"
	// KindEmpty is a missing or blank cell.
	KindEmpty CellKind = "empty"
)

// Cell is a tagged union over the value types a tabular source can produce.
// Exactly one of Text, Number or Date is meaningful, selected by Kind.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
	Date   time.Time
}

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: KindText, Text: s} }

// NumberCell returns a numeric cell.
func NumberCell(f float64) Cell { return Cell{Kind: KindNumber, Number: f} }

// DateCell returns a date cell.
func DateCell(t time.Time) Cell { return Cell{Kind: KindDate, Date: t} }

// EmptyCell returns the missing-value marker.
func EmptyCell() Cell { return Cell{Kind: KindEmpty} }

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty || (c.Kind == KindText && c.Text == "")
}

// Canonical renders the cell value as its canonical string form, so that
// repeated runs over the same source produce byte-identical metadata values.
// Numbers use the shortest decimal representation that round-trips; dates
// render as 2006-01-02, or RFC 3339 when a time component is present.
func (c Cell) Canonical() string {
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindDate:
		if c.Date.Hour() == 0 && c.Date.Minute() == 0 && c.Date.Second() == 0 {
			return c.Date.Format("2006-01-02")
		}
		return c.Date.Format(time.RFC3339)
	case KindEmpty:
		return ""
	default:
		return c.Text
	}
}
