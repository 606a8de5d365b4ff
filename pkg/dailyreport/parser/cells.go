// Package parser turns daily report sheet grids into structured records.
package parser

import (
	"strings"
	"unicode"
)

// Column positions shared by every section of the report template.
const (
	colNo   = 0
	colName = 1
)

// Cell returns the trimmed text of row[col], or "" when the column is absent.
func Cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// RowAt returns rows[idx], or nil when the row is out of range.
func RowAt(rows [][]string, idx int) []string {
	if idx < 0 || idx >= len(rows) {
		return nil
	}
	return rows[idx]
}

// isDigits reports whether s is a non-empty run of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
