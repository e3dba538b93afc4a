package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boulevard/internal/models/request_models"
	"boulevard/internal/services"
	"boulevard/pkg/utils"
)

type LocationController struct {
	locationService services.LocationService
}

func NewLocationController(locationService services.LocationService) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

func (l *LocationController) AddHandler(c *gin.Context) {
	establishmentID := c.Param("id")
	var req request_models.LocationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	location, err := l.locationService.Add(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), establishmentID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, location, "Location added successfully")
}

func (l *LocationController) UpdateHandler(c *gin.Context) {
	id := c.Param("id")
	var req request_models.LocationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	location, err := l.locationService.Update(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, location, "Location updated successfully")
}

func (l *LocationController) ListHandler(c *gin.Context) {
	locations, err := l.locationService.ListByEstablishment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, locations, "Locations fetched successfully")
}

func (l *LocationController) DeleteHandler(c *gin.Context) {
	if err := l.locationService.Delete(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Location deleted successfully")
}
