package services

import (
	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/utils"
)

// Resource field names accepted by UpdateResourceDate.
const (
	ResourceFieldStartDate = "start_date"
	ResourceFieldEndDate   = "end_date"
)

// AssignResource creates a new assignment for the given staff member,
// snapshotting role, full name and monthly salary as they are right now.
// Later staff edits never touch the snapshot. Fails with ErrAlreadyAssigned
// when the staff id is already present among the current assignments.
func AssignResource(staffID string, allStaff []models.Staff, current []models.Resource) (models.Resource, error) {
	var member *models.Staff
	for i := range allStaff {
		if allStaff[i].ID == staffID {
			member = &allStaff[i]
			break
		}
	}
	if member == nil {
		return models.Resource{}, ErrStaffNotFound
	}

	for _, res := range current {
		if res.StaffID == staffID {
			return models.Resource{}, ErrAlreadyAssigned
		}
	}

	return models.Resource{
		ID:            utils.GenerateResourceID(),
		StaffID:       member.ID,
		StaffRole:     member.ProjectRole,
		StaffFullName: member.FullName,
		MonthlySalary: member.MonthlySalary,
		StartDate:     "",
		EndDate:       "",
		WorkingDays:   0,
		AmountToPay:   0,
	}, nil
}

// UpdateResourceDate mutates one date field of the identified assignment and
// recomputes the derived pair from the mutated dates. The recompute always
// uses the post-mutation values.
func UpdateResourceDate(resources []models.Resource, resourceID, field, value string) ([]models.Resource, models.Resource, error) {
	if field != ResourceFieldStartDate && field != ResourceFieldEndDate {
		return resources, models.Resource{}, ErrInvalidField
	}

	for i := range resources {
		if resources[i].ID != resourceID {
			continue
		}
		if field == ResourceFieldStartDate {
			resources[i].StartDate = value
		} else {
			resources[i].EndDate = value
		}
		resources[i].WorkingDays = utils.CalculateWorkingDays(resources[i].StartDate, resources[i].EndDate)
		resources[i].AmountToPay = utils.CalculateAmountToPay(resources[i].WorkingDays, resources[i].MonthlySalary)
		return resources, resources[i], nil
	}
	return resources, models.Resource{}, ErrResourceNotFound
}

// RemoveResource deletes the identified assignment from the list. Removing
// an unknown id leaves the list unchanged.
func RemoveResource(resources []models.Resource, resourceID string) []models.Resource {
	kept := make([]models.Resource, 0, len(resources))
	for _, res := range resources {
		if res.ID != resourceID {
			kept = append(kept, res)
		}
	}
	return kept
}

// AvailableStaff returns the staff members not yet assigned, the candidate
// pool for AssignResource. Computed fresh on every call.
func AvailableStaff(allStaff []models.Staff, current []models.Resource) []models.Staff {
	assigned := make(map[string]bool, len(current))
	for _, res := range current {
		assigned[res.StaffID] = true
	}

	available := make([]models.Staff, 0, len(allStaff))
	for _, member := range allStaff {
		if !assigned[member.ID] {
			available = append(available, member)
		}
	}
	return available
}
