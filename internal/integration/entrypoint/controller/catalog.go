package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grocery-pos/backend/internal/domain/entity"
	"github.com/grocery-pos/backend/internal/integration/entrypoint/dto"
)

// CatalogController handles catalog endpoints.
type CatalogController struct {
	catalog *entity.Catalog
}

// NewCatalogController creates a new catalog controller instance.
func NewCatalogController(catalog *entity.Catalog) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// Get handles GET /catalog requests.
func (c *CatalogController) Get(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToCatalogResponse(c.catalog))
}
