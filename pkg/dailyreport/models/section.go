package models

// TaskProgress is one "2.x" row of the item-by-item progress report.
type TaskProgress struct {
	TaskNo          string `json:"taskNo"`
	TaskName        string `json:"taskName"`
	PlannedProgress string `json:"plannedProgress"`
	ActualProgress  string `json:"actualProgress"`
	DeviationReason string `json:"deviationReason"`
	ImpactMeasures  string `json:"impactMeasures"`
}

// TomorrowPlan is one "3.x" row of the next-day work plan.
type TomorrowPlan struct {
	PlanNo            string `json:"planNo"`
	TaskName          string `json:"taskName"`
	Goal              string `json:"goal"`
	ResponsiblePerson string `json:"responsiblePerson"`
	RequiredResources string `json:"requiredResources"`
	Remarks           string `json:"remarks"`
}

// WorkerReport is one on-site worker entry.
type WorkerReport struct {
	SeqNo       string `json:"seqNo"`
	Name        string `json:"name"`
	JobType     string `json:"jobType"`
	WorkerType  string `json:"workerType"`
	WorkContent string `json:"workContent"`
	WorkHours   string `json:"workHours"`
}

// MachineryRental is one rented machine entry.
type MachineryRental struct {
	SeqNo       string `json:"seqNo"`
	MachineName string `json:"machineName"`
	Quantity    string `json:"quantity"`
	Tonnage     string `json:"tonnage"`
	Usage       string `json:"usage"`
	Shift       string `json:"shift"`
	Remarks     string `json:"remarks"`
}

// ProblemFeedback is one reported site problem.
type ProblemFeedback struct {
	ProblemNo   string `json:"problemNo"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
	Impact      string `json:"impact"`
	Progress    string `json:"progress"`
}

// Requirement is one resource or support request.
type Requirement struct {
	RequirementNo string `json:"requirementNo"`
	Description   string `json:"description"`
	UrgencyLevel  string `json:"urgencyLevel"`
	ExpectedTime  string `json:"expectedTime"`
}
