package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/repository"
	"github.com/gfabrizzio79/Telecor-App/services"
)

// AddTraining godoc
// @Summary      Append an empty training to a staff member
// @Tags         trainings
// @Param        id   path  string  true  "Staff ID"
// @Success      201  {object}  models.Training
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/staff/{id}/trainings [post]
func AddTraining(staff *repository.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		member, err := staff.Get(c.Param("id"))
		if err != nil {
			respondLoadError(c, err, "staff")
			return
		}
		if member == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
			return
		}

		trainings, created := services.AddTraining(member.Trainings)
		member.Trainings = trainings
		if _, err := staff.Save(*member); err != nil {
			respondLoadError(c, err, "staff")
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// UpdateTraining godoc
// @Summary      Update one field of a training record
// @Description  Field is one of course_name, level, file, file_name. File
// @Description  content is stored inline as base64 with its filename.
// @Tags         trainings
// @Accept       json
// @Produce      json
// @Param        id           path  string                        true  "Staff ID"
// @Param        training_id  path  string                        true  "Training ID"
// @Param        request      body  models.UpdateTrainingRequest  true  "Field update"
// @Success      200  {object}  models.Training
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/staff/{id}/trainings/{training_id} [put]
func UpdateTraining(staff *repository.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateTrainingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		member, err := staff.Get(c.Param("id"))
		if err != nil {
			respondLoadError(c, err, "staff")
			return
		}
		if member == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
			return
		}

		trainings, updated, err := services.UpdateTraining(member.Trainings, c.Param("training_id"), req.Field, req.Value)
		if errors.Is(err, services.ErrInvalidField) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Field must be one of course_name, level, file, file_name"})
			return
		}
		if errors.Is(err, services.ErrTrainingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Training not found"})
			return
		}

		member.Trainings = trainings
		if _, err := staff.Save(*member); err != nil {
			respondLoadError(c, err, "staff")
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// RemoveTraining godoc
// @Summary      Remove a training record
// @Description  Removing an unknown training id is a no-op.
// @Tags         trainings
// @Param        id           path  string  true  "Staff ID"
// @Param        training_id  path  string  true  "Training ID"
// @Success      200  {object}  models.MessageResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/staff/{id}/trainings/{training_id} [delete]
func RemoveTraining(staff *repository.StaffRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		member, err := staff.Get(c.Param("id"))
		if err != nil {
			respondLoadError(c, err, "staff")
			return
		}
		if member == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
			return
		}

		member.Trainings = services.RemoveTraining(member.Trainings, c.Param("training_id"))
		if _, err := staff.Save(*member); err != nil {
			respondLoadError(c, err, "staff")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Training removed"})
	}
}
