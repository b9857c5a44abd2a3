package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfabrizzio79/Telecor-App/models"
	"github.com/gfabrizzio79/Telecor-App/repository"
)

// GetCountries godoc
// @Summary      List the country registry
// @Tags         registries
// @Produce      json
// @Success      200  {object}  models.RegistryResponse
// @Router       /api/countries [get]
func GetCountries(repo *repository.RegistryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		countries, err := repo.Countries()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.RegistryResponse{Options: countries, Count: len(countries)})
	}
}

// AddCountry godoc
// @Summary      Append a country to the registry
// @Description  Duplicates are ignored; the registry stays alphabetically
// @Description  sorted.
// @Tags         registries
// @Accept       json
// @Produce      json
// @Param        request  body  models.AddOptionRequest  true  "Country name"
// @Success      200  {object}  models.RegistryResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/countries [post]
func AddCountry(repo *repository.RegistryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AddOptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		countries, err := repo.AddCountry(req.Value)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.RegistryResponse{Options: countries, Count: len(countries)})
	}
}

// GetAfpOptions godoc
// @Summary      List the AFP plan registry
// @Tags         registries
// @Produce      json
// @Success      200  {object}  models.RegistryResponse
// @Router       /api/afp-options [get]
func GetAfpOptions(repo *repository.RegistryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		options, err := repo.AfpOptions()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.RegistryResponse{Options: options, Count: len(options)})
	}
}

// AddAfpOption godoc
// @Summary      Append an AFP plan to the registry
// @Description  Duplicates are ignored; insertion order is kept.
// @Tags         registries
// @Accept       json
// @Produce      json
// @Param        request  body  models.AddOptionRequest  true  "AFP plan name"
// @Success      200  {object}  models.RegistryResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /api/afp-options [post]
func AddAfpOption(repo *repository.RegistryRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AddOptionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		options, err := repo.AddAfpOption(req.Value)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, models.RegistryResponse{Options: options, Count: len(options)})
	}
}
