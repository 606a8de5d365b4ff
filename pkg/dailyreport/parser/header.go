package parser

import (
	"strings"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/models"
)

// Fixed cells of the template header.
const (
	titleRow, titleCol       = 0, 0
	progressRow, progressCol = 2, 4
)

// titleSuffixes are stripped from the sheet title, longest first.
var titleSuffixes = []string{"项目工作日报", "日报"}

// progressKeywords are checked in order; the first match wins.
var progressKeywords = []struct {
	keyword  string
	progress models.Progress
}{
	{"正常", models.ProgressNormal},
	{"滞后", models.ProgressDelayed},
	{"超前", models.ProgressAhead},
}

// ReporterName derives the reporter (project) name from a sheet title.
func ReporterName(title string) string {
	name := strings.TrimSpace(title)
	for _, suffix := range titleSuffixes {
		if strings.HasSuffix(name, suffix) {
			name = strings.TrimSpace(strings.TrimSuffix(name, suffix))
			break
		}
	}
	if name == "" {
		return models.UnknownReporter
	}
	return name
}

// ClassifyProgress maps a free-text progress description to a Progress.
// Text with no known keyword is treated as normal.
func ClassifyProgress(description string) models.Progress {
	for _, kw := range progressKeywords {
		if strings.Contains(description, kw.keyword) {
			return kw.progress
		}
	}
	return models.ProgressNormal
}
