// Package models defines data structures for daily report extraction.
package models

// Progress classifies the overall schedule state of a project.
type Progress string

const (
	// ProgressNormal means the project is on schedule.
	ProgressNormal Progress = "normal"
	// ProgressDelayed means the project is behind schedule.
	ProgressDelayed Progress = "delayed"
	// ProgressAhead means the project is ahead of schedule.
	ProgressAhead Progress = "ahead"
)

// UnknownReporter is used when a sheet title yields no reporter name.
const UnknownReporter = "未知项目"

// DailyReport represents the structured content of one sheet (one day).
type DailyReport struct {
	// ReportDate is the sheet name, used verbatim.
	ReportDate string `json:"reportDate"`
	// ReporterName is the sheet title with the report suffix removed.
	ReporterName string `json:"reporterName"`
	// OverallProgress is classified from ProgressDescription.
	OverallProgress Progress `json:"overallProgress"`
	// ProgressDescription is the raw overall progress text.
	ProgressDescription string `json:"progressDescription"`

	TaskProgressList []TaskProgress    `json:"taskProgressList"`
	TomorrowPlans    []TomorrowPlan    `json:"tomorrowPlans"`
	WorkerReports    []WorkerReport    `json:"workerReports"`
	MachineryRentals []MachineryRental `json:"machineryRentals"`
	ProblemFeedbacks []ProblemFeedback `json:"problemFeedbacks"`
	Requirements     []Requirement     `json:"requirements"`

	// OnSitePersonnelCount is always len(WorkerReports).
	OnSitePersonnelCount int `json:"onSitePersonnelCount"`

	// Weather, Temperature and Remarks are reserved and never populated
	// from the sheet.
	Weather     *string `json:"weather"`
	Temperature *string `json:"temperature"`
	Remarks     *string `json:"remarks"`
}

// NewDailyReport assembles a report and derives its personnel count.
// Nil section slices are replaced with empty ones so that every section
// serializes as a JSON array.
func NewDailyReport(date, reporter string, progress Progress, description string, s Sections) DailyReport {
	r := DailyReport{
		ReportDate:          date,
		ReporterName:        reporter,
		OverallProgress:     progress,
		ProgressDescription: description,
		TaskProgressList:    nonNil(s.TaskProgress),
		TomorrowPlans:       nonNil(s.TomorrowPlans),
		WorkerReports:       nonNil(s.Workers),
		MachineryRentals:    nonNil(s.Machinery),
		ProblemFeedbacks:    nonNil(s.Problems),
		Requirements:        nonNil(s.Requirements),
	}
	r.OnSitePersonnelCount = len(r.WorkerReports)
	return r
}

// Sections groups the six extracted record sequences of a sheet.
type Sections struct {
	TaskProgress  []TaskProgress
	TomorrowPlans []TomorrowPlan
	Workers       []WorkerReport
	Machinery     []MachineryRental
	Problems      []ProblemFeedback
	Requirements  []Requirement
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
