package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfabrizzio79/Telecor-App/logging"
	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/repository"
)

// GetProjects godoc
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}   models.Project
// @Failure      422  {object}  models.ErrorResponse
// @Router       /api/projects [get]
func GetProjects(repo *repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := repo.List()
		if err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		c.JSON(http.StatusOK, projects)
	}
}

// GetProjectByID godoc
// @Summary      Get one project
// @Tags         projects
// @Param        id   path  string  true  "Project ID"
// @Success      200  {object}  models.Project
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/projects/{id} [get]
func GetProjectByID(repo *repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := repo.Get(c.Param("id"))
		if err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		if project == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

// SaveProject godoc
// @Summary      Create or update a project
// @Description  A project with a known id is replaced in place; one without
// @Description  gets fresh project and client identities.
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        request  body  models.Project  true  "Project"
// @Success      200  {object}  models.Project
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/projects [post]
func SaveProject(repo *repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var project models.Project
		if err := c.ShouldBindJSON(&project); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if project.Status == "" {
			project.Status = models.StatusPlanned
		}

		saved, err := repo.Save(project)
		if err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		logging.Logger.Infof("Project saved: %s (%s)", saved.Name, saved.ProjectID)
		c.JSON(http.StatusOK, saved)
	}
}

// DeleteProject godoc
// @Summary      Delete a project
// @Description  Deleting an unknown id is a no-op.
// @Tags         projects
// @Param        id   path  string  true  "Project ID"
// @Success      200  {object}  models.MessageResponse
// @Router       /api/projects/{id} [delete]
func DeleteProject(repo *repository.ProjectRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := repo.Delete(c.Param("id")); err != nil {
			respondLoadError(c, err, "projects")
			return
		}
		logging.Logger.Infof("Project deleted: %s", c.Param("id"))
		c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
	}
}

// respondLoadError maps storage failures to HTTP statuses. Corrupt stored
// data is a 422 so the client can tell it apart from an infrastructure
// failure.
func respondLoadError(c *gin.Context, err error, collection string) {
	logging.Logger.Errorf("Storage error on %s: %v", collection, err)
	if errors.Is(err, repository.ErrCorruptData) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Stored data is corrupt and could not be loaded"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
