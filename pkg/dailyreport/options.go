// Package dailyreport extracts structured daily construction reports from
// spreadsheet workbooks.
package dailyreport

import "github.com/ukaji3/dailyreport-go/pkg/dailyreport/parser"

// Options configures extraction behavior.
type Options struct {
	// Layout holds the row windows scanned by each section.
	Layout parser.Layout
	// Concurrency is the number of sheets parsed at once.
	// Values below 2 parse sheets sequentially.
	Concurrency int
	// SkipUnreadableSheets drops sheets whose rows cannot be read instead
	// of failing the whole extraction.
	SkipUnreadableSheets bool
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Layout:      parser.DefaultLayout(),
		Concurrency: 1,
	}
}
