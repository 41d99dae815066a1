package dto

import (
	"github.com/grocery-pos/backend/internal/application/usecase/analytics"
	"github.com/grocery-pos/backend/internal/domain/entity"
)

// AnalyticsResponse represents the full aggregation view of the
// analytics endpoint.
type AnalyticsResponse struct {
	Summary  SummaryResponse `json:"summary"`
	Grouping string          `json:"grouping"`

	Series []PeriodTotalResponse `json:"series"`

	FocusProduct  string                      `json:"focus_product,omitempty"`
	ProductSeries []ProductPeriodStatResponse `json:"product_series,omitempty"`

	CategorySales      []CategoryStatResponse        `json:"category_sales"`
	ProductSales       []ProductStatResponse         `json:"product_sales"`
	ProductMetrics     []ProductMetricResponse       `json:"product_metrics"`
	ProductsByCategory []CategoryProductStatResponse `json:"products_by_category"`
	TopCustomers       []CustomerStatResponse        `json:"top_customers"`
	FrequentCustomers  []CustomerStatResponse        `json:"frequent_customers"`

	AvailableCategories []string `json:"available_categories"`
	AvailableProducts   []string `json:"available_products"`
	Warnings            []string `json:"warnings,omitempty"`
}

// SummaryResponse represents the headline metrics.
type SummaryResponse struct {
	TotalSales       float64 `json:"total_sales"`
	TotalQuantity    int     `json:"total_quantity"`
	AverageSaleValue float64 `json:"average_sale_value"`
	TransactionCount int     `json:"transaction_count"`
}

// PeriodTotalResponse represents one point of the grouped time series.
type PeriodTotalResponse struct {
	Period string  `json:"period"`
	Total  float64 `json:"total"`
}

// ProductPeriodStatResponse represents one point of the focused product
// dual series.
type ProductPeriodStatResponse struct {
	Period   string  `json:"period"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
}

// CategoryStatResponse represents one category's sales.
type CategoryStatResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Quantity int     `json:"quantity"`
}

// ProductStatResponse represents one product's sales.
type ProductStatResponse struct {
	Product  string  `json:"product"`
	Total    float64 `json:"total"`
	Quantity int     `json:"quantity"`
}

// ProductMetricResponse represents one product's detailed metrics.
type ProductMetricResponse struct {
	Product          string  `json:"product"`
	TotalSales       float64 `json:"total_sales"`
	QuantitySold     int     `json:"quantity_sold"`
	TransactionCount int     `json:"transaction_count"`
	AveragePrice     float64 `json:"average_price"`
}

// CategoryProductStatResponse represents one product's sales within a category.
type CategoryProductStatResponse struct {
	Category string  `json:"category"`
	Product  string  `json:"product"`
	Total    float64 `json:"total"`
	Quantity int     `json:"quantity"`
}

// CustomerStatResponse represents one customer's leaderboard entry.
type CustomerStatResponse struct {
	Customer  string  `json:"customer"`
	Total     float64 `json:"total"`
	Purchases int     `json:"purchases"`
}

// ToAnalyticsResponse converts an AggregateSalesOutput to its response DTO.
func ToAnalyticsResponse(output *analytics.AggregateSalesOutput) AnalyticsResponse {
	view := output.View

	series := make([]PeriodTotalResponse, len(view.Series))
	for i, point := range view.Series {
		series[i] = PeriodTotalResponse{
			Period: point.Period,
			Total:  point.Total.InexactFloat64(),
		}
	}

	productSeries := make([]ProductPeriodStatResponse, len(view.ProductSeries))
	for i, point := range view.ProductSeries {
		productSeries[i] = ProductPeriodStatResponse{
			Period:   point.Period,
			Quantity: point.Quantity,
			Total:    point.Total.InexactFloat64(),
		}
	}

	categorySales := make([]CategoryStatResponse, len(view.CategorySales))
	for i, stat := range view.CategorySales {
		categorySales[i] = CategoryStatResponse{
			Category: stat.Category,
			Total:    stat.Total.InexactFloat64(),
			Quantity: stat.Quantity,
		}
	}

	productSales := make([]ProductStatResponse, len(view.ProductSales))
	for i, stat := range view.ProductSales {
		productSales[i] = ProductStatResponse{
			Product:  stat.Product,
			Total:    stat.Total.InexactFloat64(),
			Quantity: stat.Quantity,
		}
	}

	productMetrics := make([]ProductMetricResponse, len(view.ProductMetrics))
	for i, metric := range view.ProductMetrics {
		productMetrics[i] = ProductMetricResponse{
			Product:          metric.Product,
			TotalSales:       metric.TotalSales.InexactFloat64(),
			QuantitySold:     metric.QuantitySold,
			TransactionCount: metric.TransactionCount,
			AveragePrice:     metric.AveragePrice.InexactFloat64(),
		}
	}

	productsByCategory := make([]CategoryProductStatResponse, len(view.ProductsByCategory))
	for i, stat := range view.ProductsByCategory {
		productsByCategory[i] = CategoryProductStatResponse{
			Category: stat.Category,
			Product:  stat.Product,
			Total:    stat.Total.InexactFloat64(),
			Quantity: stat.Quantity,
		}
	}

	return AnalyticsResponse{
		Summary: SummaryResponse{
			TotalSales:       view.Summary.TotalSales.InexactFloat64(),
			TotalQuantity:    view.Summary.TotalQuantity,
			AverageSaleValue: view.Summary.AverageSaleValue.InexactFloat64(),
			TransactionCount: view.Summary.TransactionCount,
		},
		Grouping:           string(view.Grouping),
		Series:             series,
		FocusProduct:       view.FocusProduct,
		ProductSeries:      productSeries,
		CategorySales:      categorySales,
		ProductSales:       productSales,
		ProductMetrics:     productMetrics,
		ProductsByCategory: productsByCategory,
		TopCustomers:       toCustomerStats(view.TopCustomers),
		FrequentCustomers:  toCustomerStats(view.FrequentCustomers),

		AvailableCategories: output.AvailableCategories,
		AvailableProducts:   output.AvailableProducts,
		Warnings:            output.Warnings,
	}
}

func toCustomerStats(stats []entity.CustomerStat) []CustomerStatResponse {
	responses := make([]CustomerStatResponse, len(stats))
	for i, stat := range stats {
		responses[i] = CustomerStatResponse{
			Customer:  stat.Customer,
			Total:     stat.Total.InexactFloat64(),
			Purchases: stat.Purchases,
		}
	}
	return responses
}
