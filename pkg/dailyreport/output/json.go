// Package output serializes extracted daily reports.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/models"
)

// ToJSON serializes reports as a JSON array.
// Non-ASCII text is written literally and HTML characters are not escaped.
func ToJSON(reports []models.DailyReport, pretty bool) ([]byte, error) {
	if reports == nil {
		reports = []models.DailyReport{}
	}
	return marshal(reports, pretty)
}

// ReportToJSON serializes a single report.
func ReportToJSON(report *models.DailyReport, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
