package dto

import (
	"github.com/grocery-pos/backend/internal/domain/entity"
)

// CatalogResponse represents the product catalog grouped by category.
type CatalogResponse struct {
	Categories []CatalogCategoryResponse `json:"categories"`
}

// CatalogCategoryResponse represents one category with its tax rate and
// products in catalog order.
type CatalogCategoryResponse struct {
	Name     string                   `json:"name"`
	TaxRate  float64                  `json:"tax_rate"`
	Products []CatalogProductResponse `json:"products"`
}

// CatalogProductResponse represents one product of the catalog.
type CatalogProductResponse struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// ToCatalogResponse converts a Catalog to its response DTO.
func ToCatalogResponse(catalog *entity.Catalog) CatalogResponse {
	categories := make([]CatalogCategoryResponse, 0, len(entity.Categories))
	for _, category := range entity.Categories {
		names := catalog.ProductNames(category)
		products := make([]CatalogProductResponse, 0, len(names))
		for _, name := range names {
			product, ok := catalog.Lookup(name)
			if !ok {
				continue
			}
			products = append(products, CatalogProductResponse{
				Name:      product.Name,
				UnitPrice: product.UnitPrice.InexactFloat64(),
			})
		}
		categories = append(categories, CatalogCategoryResponse{
			Name:     string(category),
			TaxRate:  category.TaxRate().InexactFloat64(),
			Products: products,
		})
	}
	return CatalogResponse{Categories: categories}
}
