package models

// ReportFilter holds the four independent selector sets of the project
// report. An empty set means no filter on that dimension.
type ReportFilter struct {
	Clients      []string `json:"clients"`
	ProjectNames []string `json:"project_names"`
	Statuses     []string `json:"statuses"`
	StaffNames   []string `json:"staff_names"`
}

// ReportRow is one line of the project report. Placeholder rows stand for a
// project without matching resources; their resource fields are rendered as
// "-" by the exporters and they contribute nothing to the grand total.
type ReportRow struct {
	ProjectName   string   `json:"project_name"`
	ClientID      string   `json:"client_id"`
	Status        string   `json:"status"`
	StaffFullName string   `json:"staff_full_name"`
	StaffRole     string   `json:"staff_role"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	WorkingDays   int      `json:"working_days"`
	MonthlySalary *float64 `json:"monthly_salary"`
	AmountToPay   float64  `json:"amount_to_pay"`
	Placeholder   bool     `json:"placeholder"`
}

// ProjectReport is the JSON report payload.
type ProjectReport struct {
	Rows       []ReportRow `json:"rows"`
	GrandTotal float64     `json:"grand_total"`
	RowCount   int         `json:"row_count"`
}
