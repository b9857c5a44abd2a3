package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfabrizzio79/Telecor-App/logging"
	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/repository"
)

// GetStaff godoc
// @Summary      List staff members
// @Description  Always sorted by last name ascending.
// @Tags         staff
// @Produce      json
// @Success      200  {array}   models.Staff
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/staff [get]
func GetStaff(repo *repository.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, err := repo.List()
		if err != nil {
			respondLoadError(c, err, "staff")
			return
		}
		c.JSON(http.StatusOK, staff)
	}
}

// GetStaffByID godoc
// @Summary      Get one staff member
// @Tags         staff
// @Param        id   path  string  true  "Staff ID"
// @Success      200  {object}  models.Staff
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/staff/{id} [get]
func GetStaffByID(repo *repository.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		member, err := repo.Get(c.Param("id"))
		if err != nil {
			respondLoadError(c, err, "staff")
			return
		}
		if member == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
			return
		}
		c.JSON(http.StatusOK, member)
	}
}

// SaveStaff godoc
// @Summary      Create or update a staff member
// @Description  The full name is recomputed from first and last names on
// @Description  every save.
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        request  body  models.Staff  true  "Staff member"
// @Success      200  {object}  models.Staff
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/staff [post]
func SaveStaff(repo *repository.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var member models.Staff
		if err := c.ShouldBindJSON(&member); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		saved, err := repo.Save(member)
		if err != nil {
			respondLoadError(c, err, "staff")
			return
		}
		logging.Logger.Infof("Staff saved: %s (%s)", saved.FullName, saved.ID)
		c.JSON(http.StatusOK, saved)
	}
}

// DeleteStaff godoc
// @Summary      Delete a staff member
// @Description  Existing project assignments keep their snapshots; there is
// @Description  no cascade into resources.
// @Tags         staff
// @Param        id   path  string  true  "Staff ID"
// @Success      200  {object}  models.MessageResponse
// @Router       /api/staff/{id} [delete]
func DeleteStaff(repo *repository.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Delete(c.Param("id")); err != nil {
			respondLoadError(c, err, "staff")
			return
		}
		logging.Logger.Infof("Staff deleted: %s", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
	}
}
