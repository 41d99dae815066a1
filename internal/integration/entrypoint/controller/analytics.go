package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grocery-pos/backend/internal/application/adapter"
	"github.com/grocery-pos/backend/internal/application/usecase/analytics"
	"github.com/grocery-pos/backend/internal/domain/entity"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
	"github.com/grocery-pos/backend/internal/integration/entrypoint/dto"
)

// analyticsDateLayout is the query-parameter date form (YYYY-MM-DD).
const analyticsDateLayout = "2006-01-02"

// AnalyticsController handles the sales aggregation endpoint.
type AnalyticsController struct {
	aggregateSalesUseCase *analytics.AggregateSalesUseCase
	// sources supplies the row sources per request so newly saved bills
	// are visible without a restart.
	sources func() []adapter.RowSource
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	aggregateSalesUseCase *analytics.AggregateSalesUseCase,
	sources func() []adapter.RowSource,
) *AnalyticsController {
	return &AnalyticsController{
		aggregateSalesUseCase: aggregateSalesUseCase,
		sources:               sources,
	}
}

// Get handles GET /analytics requests.
func (c *AnalyticsController) Get(ctx *gin.Context) {
	input, ok := c.parseInput(ctx)
	if !ok {
		return
	}

	output, err := c.aggregateSalesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output))
}

// parseInput parses the filter query parameters, writing the error
// response itself when a parameter is malformed.
func (c *AnalyticsController) parseInput(ctx *gin.Context) (analytics.AggregateSalesInput, bool) {
	input := analytics.AggregateSalesInput{
		Sources:      c.sources(),
		Category:     ctx.Query("category"),
		Product:      ctx.Query("product"),
		Grouping:     entity.Grouping(ctx.DefaultQuery("group_by", string(entity.GroupingDay))),
		FocusProduct: ctx.Query("focus_product"),
	}

	if raw := ctx.Query("start_date"); raw != "" {
		date, err := time.Parse(analyticsDateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format, expected YYYY-MM-DD",
			})
			return input, false
		}
		input.StartDate = &date
	}

	if raw := ctx.Query("end_date"); raw != "" {
		date, err := time.Parse(analyticsDateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format, expected YYYY-MM-DD",
			})
			return input, false
		}
		input.EndDate = &date
	}

	return input, true
}

// handleAnalyticsError maps analytics errors to HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var analyticsErr *domainerror.AnalyticsError
	if errors.As(err, &analyticsErr) {
		status := http.StatusBadRequest
		if analyticsErr.Code == domainerror.ErrCodeAllSourcesFailed {
			status = http.StatusInternalServerError
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: analyticsErr.Message,
			Code:  string(analyticsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
