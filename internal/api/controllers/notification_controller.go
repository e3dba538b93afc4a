package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boulevard/internal/models/request_models"
	"boulevard/internal/services"
	"boulevard/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationService
}

func NewNotificationController(notificationService services.NotificationService) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

func (n *NotificationController) CreateHandler(c *gin.Context) {
	var req request_models.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	notification, err := n.notificationService.Create(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notification, "Notification created successfully")
}

func (n *NotificationController) ListMineHandler(c *gin.Context) {
	notifications, err := n.notificationService.ListMine(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications, "Notifications fetched successfully")
}

func (n *NotificationController) MarkReadHandler(c *gin.Context) {
	if err := n.notificationService.MarkRead(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification marked as read")
}

func (n *NotificationController) MarkAllReadHandler(c *gin.Context) {
	if err := n.notificationService.MarkAllRead(c.Request.Context(), c.GetString("user_id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "All notifications marked as read")
}

func (n *NotificationController) CountUnreadHandler(c *gin.Context) {
	count, err := n.notificationService.CountUnread(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"noLeidas": count}, "Unread count fetched successfully")
}
