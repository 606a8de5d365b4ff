package parser

import (
	"regexp"

	"github.com/ukaji3/dailyreport-go/pkg/dailyreport/models"
)

// problemSubNo matches the "1.x" numbering of problems in older templates.
var problemSubNo = regexp.MustCompile(`^1\.\d+$`)

// requirementCaptions label the requirement sub-header inside region 四.
var requirementCaptions = []string{"需求描述", "需求"}

var taskProgressScan = prefixScan[models.TaskProgress]{
	prefix: "2.",
	build: func(row []string) models.TaskProgress {
		return models.TaskProgress{
			TaskNo:          Cell(row, 0),
			TaskName:        Cell(row, 1),
			PlannedProgress: Cell(row, 2),
			ActualProgress:  Cell(row, 4),
			DeviationReason: Cell(row, 5),
			ImpactMeasures:  Cell(row, 6),
		}
	},
}

var tomorrowPlanScan = prefixScan[models.TomorrowPlan]{
	prefix: "3.",
	build: func(row []string) models.TomorrowPlan {
		return models.TomorrowPlan{
			PlanNo:            Cell(row, 0),
			TaskName:          Cell(row, 1),
			Goal:              Cell(row, 2),
			ResponsiblePerson: Cell(row, 4),
			RequiredResources: Cell(row, 5),
			Remarks:           Cell(row, 6),
		}
	},
}

var workerScan = regionScan[models.WorkerReport]{
	entry:   "二",
	caption: "姓名",
	build: func(row []string) models.WorkerReport {
		return models.WorkerReport{
			SeqNo:       Cell(row, 0),
			Name:        Cell(row, 1),
			JobType:     Cell(row, 2),
			WorkerType:  Cell(row, 3),
			WorkContent: Cell(row, 4),
			WorkHours:   Cell(row, 6),
		}
	},
}

var machineryScan = regionScan[models.MachineryRental]{
	entry:   "三",
	caption: "机械名称",
	build: func(row []string) models.MachineryRental {
		return models.MachineryRental{
			SeqNo:       Cell(row, 0),
			MachineName: Cell(row, 1),
			Quantity:    Cell(row, 2),
			Tonnage:     Cell(row, 3),
			Usage:       Cell(row, 4),
			Shift:       Cell(row, 5),
			Remarks:     Cell(row, 6),
		}
	},
}

var problemScan = regionScan[models.ProblemFeedback]{
	entry:   "四",
	caption: "问题描述",
	stop:    isRequirementHeader,
	keep:    isProblemNo,
	build: func(row []string) models.ProblemFeedback {
		return models.ProblemFeedback{
			ProblemNo:   Cell(row, 0),
			Description: Cell(row, 1),
			Reason:      Cell(row, 3),
			Impact:      Cell(row, 4),
			Progress:    Cell(row, 5),
		}
	},
}

var requirementScan = regionScan[models.Requirement]{
	entry:   "四",
	caption: "需求描述",
	gate:    isRequirementHeader,
	build: func(row []string) models.Requirement {
		return models.Requirement{
			RequirementNo: Cell(row, 0),
			Description:   Cell(row, 1),
			UrgencyLevel:  Cell(row, 3),
			ExpectedTime:  Cell(row, 5),
		}
	},
}

// isRequirementHeader matches the "2 需求描述" row that splits region 四
// into problems and requirements.
func isRequirementHeader(row []string) bool {
	if Cell(row, colNo) != "2" {
		return false
	}
	name := Cell(row, colName)
	for _, caption := range requirementCaptions {
		if name == caption {
			return true
		}
	}
	return false
}

// isProblemNo accepts both problem numbering styles: plain numbers other
// than the "1" group header, and "1.x".
func isProblemNo(row []string) bool {
	no := Cell(row, colNo)
	return (isDigits(no) && no != "1") || problemSubNo.MatchString(no)
}
