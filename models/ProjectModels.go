package models

// Project statuses
const (
	StatusPlanned    = "Planned"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusPaused     = "Paused"
)

// ProjectStatuses lists every valid project status, in display order.
var ProjectStatuses = []string{StatusPlanned, StatusInProgress, StatusCompleted, StatusPaused}

// Resource represents one staff member's assignment to a project.
// StaffRole, StaffFullName and MonthlySalary are snapshots taken at
// assignment time; they do not track later edits to the staff record.
type Resource struct {
	ID            string   `json:"id" example:"res-1718000000000"`
	StaffID       string   `json:"staff_id" example:"staff-1717000000000"`
	StaffRole     string   `json:"staff_role" example:"Field Supervisor"`
	StaffFullName string   `json:"staff_full_name" example:"Carlos Mendoza"`
	StartDate     string   `json:"start_date" example:"2025-03-01"`
	EndDate       string   `json:"end_date" example:"2025-03-15"`
	WorkingDays   int      `json:"working_days" example:"15"`
	MonthlySalary *float64 `json:"monthly_salary" example:"1200"`
	AmountToPay   float64  `json:"amount_to_pay" example:"600"`
}

// Project represents a client project with its assigned resources.
type Project struct {
	ProjectID   string     `json:"project_id" example:"PROJ-1718000000000"`
	ClientID    string     `json:"client_id" example:"0625-K3XB"`
	Name        string     `json:"name" binding:"required" example:"Fiber Rollout Phase 2"`
	Description string     `json:"description" example:"Structured cabling for the new data hall"`
	Country     string     `json:"country" example:"El Salvador"`
	PMOClient   string     `json:"pmo_client" example:"Maria Lopez"`
	Amount      *float64   `json:"amount" example:"25000"`
	Status      string     `json:"status" example:"Planned"`
	StartDate   string     `json:"start_date" example:"2025-03-01"`
	EndDate     string     `json:"end_date" example:"2025-06-30"`
	Resources   []Resource `json:"resources"`
}

// AssignResourceRequest is the payload for assigning a staff member to a project.
type AssignResourceRequest struct {
	StaffID string `json:"staff_id" binding:"required" example:"staff-1717000000000"`
}

// UpdateResourceDatesRequest mutates one date field of an assignment.
// Field must be "start_date" or "end_date".
type UpdateResourceDatesRequest struct {
	Field string `json:"field" binding:"required" example:"start_date"`
	Value string `json:"value" example:"2025-03-01"`
}
