package parser

import (
	"slices"
	"strings"
)

// sectionMarkers is the canonical order of the template's region headers.
var sectionMarkers = []string{"一", "二", "三", "四", "五", "六"}

// headerNo is the caption of the number column in header rows.
const headerNo = "序号"

// markersAfter returns the region markers that follow marker.
func markersAfter(marker string) []string {
	idx := slices.Index(sectionMarkers, marker)
	if idx < 0 {
		return nil
	}
	return sectionMarkers[idx+1:]
}

type rowFunc func(row []string) bool

// prefixScan keeps rows whose number starts with a fixed prefix.
type prefixScan[T any] struct {
	prefix string
	build  func(row []string) T
}

func (s prefixScan[T]) scan(rows [][]string, w Window) []T {
	var out []T
	first, last := w.Clamp(len(rows))
	for i := first; i <= last; i++ {
		row := rows[i]
		if Cell(row, colName) == "" || !strings.HasPrefix(Cell(row, colNo), s.prefix) {
			continue
		}
		out = append(out, s.build(row))
	}
	return out
}

// regionScan keeps rows between an entry marker and the next region's
// marker.
type regionScan[T any] struct {
	// entry is the region marker that opens the region.
	entry string
	// caption is the name-column text of the region's header row.
	caption string
	// gate, when set, opens a sub-region; rows before it and the gate row
	// itself are never kept.
	gate rowFunc
	// stop, when set, ends the region early.
	stop rowFunc
	// keep, when set, further filters candidate rows.
	keep  rowFunc
	build func(row []string) T
}

func (s regionScan[T]) scan(rows [][]string, w Window) []T {
	var out []T
	terminators := markersAfter(s.entry)
	inside := false
	gated := s.gate == nil

	first, last := w.Clamp(len(rows))
	for i := first; i <= last; i++ {
		row := rows[i]
		no := Cell(row, colNo)

		if !inside {
			inside = no == s.entry
			continue
		}
		if slices.Contains(terminators, no) || (s.stop != nil && s.stop(row)) {
			break
		}
		if !gated {
			gated = s.gate(row)
			continue
		}
		if s.isHeader(row) || Cell(row, colName) == "" {
			continue
		}
		if s.keep != nil && !s.keep(row) {
			continue
		}
		out = append(out, s.build(row))
	}
	return out
}

func (s regionScan[T]) isHeader(row []string) bool {
	return Cell(row, colNo) == headerNo || Cell(row, colName) == s.caption
}
