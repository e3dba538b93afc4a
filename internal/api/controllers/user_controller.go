package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boulevard/internal/models/request_models"
	"boulevard/internal/services"
	"boulevard/pkg/utils"
)

type UserController struct {
	accountService services.AccountService
}

func NewUserController(accountService services.AccountService) *UserController {
	return &UserController{
		accountService: accountService,
	}
}

func (u *UserController) GetProfileHandler(c *gin.Context) {
	profile, err := u.accountService.GetProfile(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile fetched successfully")
}

func (u *UserController) UpdateProfileHandler(c *gin.Context) {
	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	profile, err := u.accountService.UpdateProfile(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, profile, "Profile updated successfully")
}

func (u *UserController) RequestVendorRoleHandler(c *gin.Context) {
	if err := u.accountService.RequestVendorRole(c.Request.Context(), c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Vendor request submitted")
}

func (u *UserController) ListVendorRequestsHandler(c *gin.Context) {
	requests, err := u.accountService.ListVendorRequests(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, requests, "Vendor requests fetched successfully")
}

func (u *UserController) ResolveVendorRequestHandler(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	var req request_models.VendorRequestUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := u.accountService.ResolveVendorRequest(c.Request.Context(), userID, req.Decision); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Vendor request resolved")
}
