package parser

// Window is an inclusive, zero-based row range scanned by one section.
type Window struct {
	Start int `mapstructure:"start"`
	End   int `mapstructure:"end"`
}

// Clamp limits the window to a grid of n rows.
// The returned range is empty (first > last) when nothing overlaps.
func (w Window) Clamp(n int) (first, last int) {
	first, last = w.Start, w.End
	if first < 0 {
		first = 0
	}
	if last > n-1 {
		last = n - 1
	}
	return first, last
}
