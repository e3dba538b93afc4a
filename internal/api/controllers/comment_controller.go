package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boulevard/internal/models/request_models"
	"boulevard/internal/services"
	"boulevard/pkg/utils"
)

type CommentController struct {
	commentService services.CommentService
}

func NewCommentController(commentService services.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

func (cc *CommentController) CreateHandler(c *gin.Context) {
	var req request_models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	comment, err := cc.commentService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comment, "Comment created successfully")
}

func (cc *CommentController) ListHandler(c *gin.Context) {
	comments, err := cc.commentService.ListByEstablishment(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, comments, "Comments fetched successfully")
}

func (cc *CommentController) DeleteHandler(c *gin.Context) {
	if err := cc.commentService.Delete(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Comment deleted successfully")
}
