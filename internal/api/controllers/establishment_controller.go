package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boulevard/internal/models/request_models"
	"boulevard/internal/services"
	"boulevard/pkg/utils"
)

type EstablishmentController struct {
	establishmentService services.EstablishmentService
}

func NewEstablishmentController(establishmentService services.EstablishmentService) *EstablishmentController {
	return &EstablishmentController{
		establishmentService: establishmentService,
	}
}

func (e *EstablishmentController) CreateHandler(c *gin.Context) {
	var req request_models.CreateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	est, err := e.establishmentService.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, est, "Establishment created successfully")
}

func (e *EstablishmentController) UpdateHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Establishment ID is required")
		return
	}

	var req request_models.UpdateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	est, err := e.establishmentService.Update(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), id, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, est, "Establishment updated successfully")
}

func (e *EstablishmentController) DeleteHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Establishment ID is required")
		return
	}

	if err := e.establishmentService.Delete(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Establishment deleted successfully")
}

func (e *EstablishmentController) GetHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Establishment ID is required")
		return
	}

	est, err := e.establishmentService.Get(c.Request.Context(), id)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, est, "Establishment fetched successfully")
}

func (e *EstablishmentController) GetMineHandler(c *gin.Context) {
	est, err := e.establishmentService.GetMine(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, est, "Establishment fetched successfully")
}

func (e *EstablishmentController) ListHandler(c *gin.Context) {
	if status := c.Query("estado"); status != "" {
		ests, err := e.establishmentService.ListByStatus(c.Request.Context(), status)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, ests, "Establishments fetched successfully")
		return
	}

	ests, err := e.establishmentService.List(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ests, "Establishments fetched successfully")
}

func (e *EstablishmentController) SearchHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	ests, err := e.establishmentService.Search(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, ests, "Establishments fetched successfully")
}

func (e *EstablishmentController) ChangeStatusHandler(c *gin.Context) {
	id := c.Param("id")
	var req request_models.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := e.establishmentService.ChangeStatus(c.Request.Context(), id, req.Status); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Status updated successfully")
}

func (e *EstablishmentController) ChangeVerifiedHandler(c *gin.Context) {
	id := c.Param("id")
	var req request_models.ChangeVerifiedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := e.establishmentService.ChangeVerified(c.Request.Context(), id, req.Verified); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Verification updated successfully")
}

func (e *EstablishmentController) FollowHandler(c *gin.Context) {
	if err := e.establishmentService.Follow(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Now following")
}

func (e *EstablishmentController) UnfollowHandler(c *gin.Context) {
	if err := e.establishmentService.Unfollow(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "No longer following")
}

func (e *EstablishmentController) LikeHandler(c *gin.Context) {
	if err := e.establishmentService.Like(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Liked")
}

func (e *EstablishmentController) UnlikeHandler(c *gin.Context) {
	if err := e.establishmentService.Unlike(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Like removed")
}

// UploadImagesHandler accepts multipart form files under "archivos"
// and a "tipo" field choosing main image, cover or gallery.
func (e *EstablishmentController) UploadImagesHandler(c *gin.Context) {
	id := c.Param("id")
	form, err := c.MultipartForm()
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	kind := c.PostForm("tipo")
	if kind == "" {
		kind = services.ImageKindGallery
	}
	files := form.File["archivos"]

	est, err := e.establishmentService.UploadImages(c, c.GetString("user_id"), c.GetString("role"), id, kind, files)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, est, "Images uploaded successfully")
}

func (e *EstablishmentController) RemoveImageHandler(c *gin.Context) {
	id := c.Param("id")
	var req request_models.RemoveImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := e.establishmentService.RemoveImage(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), id, req.ImageName); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Image removed successfully")
}

func (e *EstablishmentController) ReorderImagesHandler(c *gin.Context) {
	id := c.Param("id")
	var req request_models.ReorderImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := e.establishmentService.ReorderImages(c.Request.Context(), c.GetString("user_id"), c.GetString("role"), id, req.Images); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Images reordered successfully")
}
