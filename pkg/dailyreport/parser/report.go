package parser

import (
	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/models"
)

// ParseSheet builds the daily report of one sheet from its row grid.
// It never fails: absent cells read as empty strings and rows that match
// no section are dropped.
func ParseSheet(sheetName string, rows [][]string, layout Layout) models.DailyReport {
	description := Cell(RowAt(rows, progressRow), progressCol)

	return models.NewDailyReport(
		sheetName,
		ReporterName(Cell(RowAt(rows, titleRow), titleCol)),
		ClassifyProgress(description),
		description,
		ParseSections(rows, layout),
	)
}

// ParseSections runs every section scanner over the same grid.
func ParseSections(rows [][]string, layout Layout) models.Sections {
	return models.Sections{
		TaskProgress:  taskProgressScan.scan(rows, layout.TaskProgress),
		TomorrowPlans: tomorrowPlanScan.scan(rows, layout.TomorrowPlans),
		Workers:       workerScan.scan(rows, layout.Workers),
		Machinery:     machineryScan.scan(rows, layout.Machinery),
		Problems:      problemScan.scan(rows, layout.Problems),
		Requirements:  requirementScan.scan(rows, layout.Requirements),
	}
}
