package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boulevard/internal/models/request_models"
	"boulevard/internal/services"
	"boulevard/pkg/utils"
)

type TaxonomyController struct {
	taxonomyService services.TaxonomyService
}

func NewTaxonomyController(taxonomyService services.TaxonomyService) *TaxonomyController {
	return &TaxonomyController{
		taxonomyService: taxonomyService,
	}
}

func (t *TaxonomyController) CreateCategoryHandler(c *gin.Context) {
	var req request_models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	category, err := t.taxonomyService.CreateCategory(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category created successfully")
}

func (t *TaxonomyController) ListCategoriesHandler(c *gin.Context) {
	categories, err := t.taxonomyService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

func (t *TaxonomyController) DeleteCategoryHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Category ID is required")
		return
	}

	if err := t.taxonomyService.DeleteCategory(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Category deleted successfully")
}

func (t *TaxonomyController) CreateTypeHandler(c *gin.Context) {
	var req request_models.TypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	bt, err := t.taxonomyService.CreateType(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, bt, "Type created successfully")
}

func (t *TaxonomyController) ListTypesHandler(c *gin.Context) {
	types, err := t.taxonomyService.ListTypes(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, types, "Types fetched successfully")
}

func (t *TaxonomyController) DeleteTypeHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.RespondError(c, http.StatusBadRequest, "Type ID is required")
		return
	}

	if err := t.taxonomyService.DeleteType(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Type deleted successfully")
}
