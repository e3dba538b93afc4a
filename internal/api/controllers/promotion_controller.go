package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boulevard/internal/models/request_models"
	"boulevard/internal/services"
	"boulevard/pkg/utils"
)

type PromotionController struct {
	promotionService services.PromotionService
}

func NewPromotionController(promotionService services.PromotionService) *PromotionController {
	return &PromotionController{
		promotionService: promotionService,
	}
}

func (p *PromotionController) CreateHandler(c *gin.Context) {
	var req request_models.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	promotion, err := p.promotionService.Create(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, promotion, "Promotion created successfully")
}

func (p *PromotionController) UpdateHandler(c *gin.Context) {
	id := c.Param("id")
	var req request_models.PromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	promotion, err := p.promotionService.Update(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, promotion, "Promotion updated successfully")
}

func (p *PromotionController) GetHandler(c *gin.Context) {
	promotion, err := p.promotionService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, promotion, "Promotion fetched successfully")
}

func (p *PromotionController) ListByEstablishmentHandler(c *gin.Context) {
	promotions, err := p.promotionService.ListByEstablishment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, promotions, "Promotions fetched successfully")
}

func (p *PromotionController) ListActiveHandler(c *gin.Context) {
	promotions, err := p.promotionService.ListActive(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, promotions, "Promotions fetched successfully")
}

func (p *PromotionController) DeleteHandler(c *gin.Context) {
	if err := p.promotionService.Delete(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Promotion deleted successfully")
}

func (p *PromotionController) ExpireOverdueHandler(c *gin.Context) {
	expired, err := p.promotionService.ExpireOverdue(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"expiradas": expired}, "Overdue promotions expired")
}
