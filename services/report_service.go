package services

import (
	"github.com/gfabrizzio79/Telecor-App/models"
)

// BuildProjectReport filters the project collection and fans it out into
// report rows with a grand total.
//
// A project survives only when it matches all four filter dimensions; within
// a dimension any selected value matches, and an empty selector set matches
// everything. The staff dimension matches a project when any of its
// resources carries a selected staff name.
//
// Row emission is asymmetric on purpose: with an active staff filter only
// the matching resources become rows and a project left with none is dropped
// entirely, while without a staff filter a resource-less project still emits
// one placeholder row. Placeholder rows contribute nothing to the total.
func BuildProjectReport(projects []models.Project, filter models.ReportFilter) models.ProjectReport {
	rows := []models.ReportRow{}
	grandTotal := 0.0

	staffFilterActive := len(filter.StaffNames) > 0

	for _, project := range projects {
		if !matchesFilter(project, filter) {
			continue
		}

		resourcesToDisplay := project.Resources
		if staffFilterActive {
			matched := make([]models.Resource, 0, len(project.Resources))
			for _, res := range project.Resources {
				if containsString(filter.StaffNames, res.StaffFullName) {
					matched = append(matched, res)
				}
			}
			resourcesToDisplay = matched
		}

		if len(resourcesToDisplay) == 0 && staffFilterActive {
			continue
		}

		if len(resourcesToDisplay) > 0 {
			for _, res := range resourcesToDisplay {
				rows = append(rows, models.ReportRow{
					ProjectName:   project.Name,
					ClientID:      project.ClientID,
					Status:        project.Status,
					StaffFullName: res.StaffFullName,
					StaffRole:     res.StaffRole,
					StartDate:     res.StartDate,
					EndDate:       res.EndDate,
					WorkingDays:   res.WorkingDays,
					MonthlySalary: res.MonthlySalary,
					AmountToPay:   res.AmountToPay,
				})
				grandTotal += res.AmountToPay
			}
		} else {
			rows = append(rows, models.ReportRow{
				ProjectName: project.Name,
				ClientID:    project.ClientID,
				Status:      project.Status,
				Placeholder: true,
			})
		}
	}

	return models.ProjectReport{
		Rows:       rows,
		GrandTotal: grandTotal,
		RowCount:   len(rows),
	}
}

func matchesFilter(project models.Project, filter models.ReportFilter) bool {
	clientMatch := len(filter.Clients) == 0 || containsString(filter.Clients, project.ClientID)
	nameMatch := len(filter.ProjectNames) == 0 || containsString(filter.ProjectNames, project.Name)
	statusMatch := len(filter.Statuses) == 0 || containsString(filter.Statuses, project.Status)

	staffMatch := len(filter.StaffNames) == 0
	if !staffMatch {
		for _, res := range project.Resources {
			if containsString(filter.StaffNames, res.StaffFullName) {
				staffMatch = true
				break
			}
		}
	}

	return clientMatch && nameMatch && statusMatch && staffMatch
}

func containsString(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
