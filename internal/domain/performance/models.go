package performance

import "time"

// Record is one employee's assessment for one period ("YYYY-MM"). Total
// score and level are derived through the scoring package; the four rank
// fields are derived from the full sibling set for the period and are only
// ever written by the rank recompute.
type Record struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	AssessorID string `json:"assessorId,omitempty"`
	Period     string `json:"period"`

	Department string `json:"department"`
	GroupType  string `json:"groupType"`

	SelfSummary    string `json:"selfSummary,omitempty"`
	NextPeriodPlan string `json:"nextPeriodPlan,omitempty"`

	TaskCompletion     float64 `json:"taskCompletion"`
	Initiative         float64 `json:"initiative"`
	ProjectFeedback    float64 `json:"projectFeedback"`
	QualityImprovement float64 `json:"qualityImprovement"`
	TotalScore         float64 `json:"totalScore"`
	Level              string  `json:"level,omitempty"`

	ManagerComment string `json:"managerComment,omitempty"`

	GroupRank      int `json:"groupRank"`
	DepartmentRank int `json:"departmentRank"`
	CrossDeptRank  int `json:"crossDeptRank"`
	CompanyRank    int `json:"companyRank"`

	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RankAssignment carries the recomputed positions for one record. The store
// applies a period's assignments as a single write.
type RankAssignment struct {
	RecordID       string
	GroupRank      int
	DepartmentRank int
	CrossDeptRank  int
	CompanyRank    int
}
