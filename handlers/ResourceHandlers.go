package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfabrizzio79/Telecor-App/logging"
	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/repository"
	"github.com/gfabrizzio79/Telecor-App/services"
)

// AssignResource godoc
// @Summary      Assign a staff member to a project
// @Description  Snapshots the staff member's role, full name and monthly
// @Description  salary at assignment time. Rejects a staff member that is
// @Description  already assigned.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true  "Project ID"
// @Param        request  body  models.AssignResourceRequest  true  "Assignment request"
// @Success      201  {object}  models.Resource
// @Failure      404  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /api/projects/{id}/resources [post]
func AssignResource(projects *repository.ProjectRepository, staff *repository.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AssignResourceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		project, err := projects.Get(c.Param("id"))
		if err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		if project == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		allStaff, err := staff.List()
		if err != nil {
			respondLoadError(c, err, "staff")
			return
		}

		resource, err := services.AssignResource(req.StaffID, allStaff, project.Resources)
		if errors.Is(err, services.ErrAlreadyAssigned) {
			c.JSON(http.StatusConflict, gin.H{"error": "This staff member is already assigned to the project"})
			return
		}
		if errors.Is(err, services.ErrStaffNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		project.Resources = append(project.Resources, resource)
		if _, err := projects.Save(*project); err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		logging.Logger.Infof("Resource %s assigned to project %s", resource.ID, project.ProjectID)
		c.JSON(http.StatusCreated, resource)
	}
}

// UpdateResourceDates godoc
// @Summary      Update one date of an assignment
// @Description  Mutates start_date or end_date and recomputes working days
// @Description  and amount to pay from the updated pair.
// @Tags         resources
// @Accept       json
// @Produce      json
// @Param        id           path  string                             true  "Project ID"
// @Param        resource_id  path  string                             true  "Resource ID"
// @Param        request      body  models.UpdateResourceDatesRequest  true  "Date update"
// @Success      200  {object}  models.Resource
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/projects/{id}/resources/{resource_id}/dates [put]
func UpdateResourceDates(projects *repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateResourceDatesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		project, err := projects.Get(c.Param("id"))
		if err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		if project == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		updated, resource, err := services.UpdateResourceDate(project.Resources, c.Param("resource_id"), req.Field, req.Value)
		if errors.Is(err, services.ErrInvalidField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Field must be start_date or end_date"})
			return
		}
		if errors.Is(err, services.ErrResourceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
			return
		}

		project.Resources = updated
		if _, err := projects.Save(*project); err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		c.JSON(http.StatusOK, resource)
	}
}

// RemoveResource godoc
// @Summary      Remove an assignment from a project
// @Description  Removing an unknown resource id is a no-op.
// @Tags         resources
// @Param        id           path  string  true  "Project ID"
// @Param        resource_id  path  string  true  "Resource ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/projects/{id}/resources/{resource_id} [delete]
func RemoveResource(projects *repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := projects.Get(c.Param("id"))
		if err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		if project == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		project.Resources = services.RemoveResource(project.Resources, c.Param("resource_id"))
		if _, err := projects.Save(*project); err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Resource removed"})
	}
}

// GetAvailableStaff godoc
// @Summary      List staff not yet assigned to a project
// @Tags         resources
// @Param        id   path  string  true  "Project ID"
// @Success      200  {array}   models.Staff
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/projects/{id}/available-staff [get]
func GetAvailableStaff(projects *repository.ProjectRepository, staff *repository.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := projects.Get(c.Param("id"))
		if err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		if project == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}

		allStaff, err := staff.List()
		if err != nil {
			respondLoadError(c, err, "staff")
			return
		}
		c.JSON(http.StatusOK, services.AvailableStaff(allStaff, project.Resources))
	}
}
