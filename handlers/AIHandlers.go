package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfabrizzio79/Telecor-App/logging"
	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/services"
)

// GenerateDescription godoc
// @Summary      Generate a project description with AI
// @Description  Returns 503 when no API key is configured and 502 when the
// @Description  model fails or answers empty. The caller keeps its form
// @Description  state and may retry.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        request  body  models.DescribeRequest  true  "Project name"
// @Success      200  {object}  models.DescribeResponse
// @Failure      502  {object}  models.ErrorResponse
// @Failure      503  {object}  models.ErrorResponse
// @Router       /api/ai/describe [post]
func GenerateDescription(gemini *services.GeminiService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.DescribeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		description, err := gemini.GenerateDescription(c.Request.Context(), req.ProjectName)
		if errors.Is(err, services.ErrMissingAPIKey) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI description is not configured on this server"})
			return
		}
		if err != nil {
			logging.Logger.Errorf("AI description failed for %q: %v", req.ProjectName, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to generate description"})
			return
		}
		c.JSON(http.StatusOK, models.DescribeResponse{Description: description})
	}
}
