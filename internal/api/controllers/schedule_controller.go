package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boulevard/internal/models/request_models"
	"boulevard/internal/services"
	"boulevard/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleService
}

func NewScheduleController(scheduleService services.ScheduleService) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

func (s *ScheduleController) AddHandler(c *gin.Context) {
	establishmentID := c.Param("id")
	var req request_models.SchedulePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schedule, err := s.scheduleService.Add(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), establishmentID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule added successfully")
}

func (s *ScheduleController) UpdateHandler(c *gin.Context) {
	id := c.Param("id")
	var req request_models.SchedulePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	schedule, err := s.scheduleService.Update(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule updated successfully")
}

func (s *ScheduleController) ListHandler(c *gin.Context) {
	schedules, err := s.scheduleService.ListByEstablishment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedules, "Schedules fetched successfully")
}

func (s *ScheduleController) DeleteHandler(c *gin.Context) {
	if err := s.scheduleService.Delete(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule deleted successfully")
}
