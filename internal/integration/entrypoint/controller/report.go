package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grocery-pos/backend/internal/application/adapter"
	"github.com/grocery-pos/backend/internal/application/usecase/analytics"
	"github.com/grocery-pos/backend/internal/application/usecase/report"
	"github.com/grocery-pos/backend/internal/domain/entity"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
	"github.com/grocery-pos/backend/internal/integration/entrypoint/dto"
)

// xlsxContentType is the MIME type of an xlsx download.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportController handles report export endpoints: it aggregates under
// the request filters and streams the workbook as a download.
type ReportController struct {
	aggregateSalesUseCase *analytics.AggregateSalesUseCase
	exportReportUseCase   *report.ExportReportUseCase
	sources               func() []adapter.RowSource
	now                   func() time.Time
}

// NewReportController creates a new report controller instance.
func NewReportController(
	aggregateSalesUseCase *analytics.AggregateSalesUseCase,
	exportReportUseCase *report.ExportReportUseCase,
	sources func() []adapter.RowSource,
	now func() time.Time,
) *ReportController {
	return &ReportController{
		aggregateSalesUseCase: aggregateSalesUseCase,
		exportReportUseCase:   exportReportUseCase,
		sources:               sources,
		now:                   now,
	}
}

// Export handles GET /reports/:kind requests. The kind path parameter
// is the report name in kebab-case, e.g. sales-summary.
func (c *ReportController) Export(ctx *gin.Context) {
	kind, ok := parseKind(ctx.Param("kind"))
	if !ok {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: fmt.Sprintf("Unknown report kind %q", ctx.Param("kind")),
			Code:  string(domainerror.ErrCodeUnknownReportKind),
		})
		return
	}

	input, ok := c.parseFilters(ctx)
	if !ok {
		return
	}

	aggregated, err := c.aggregateSalesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	output, err := c.exportReportUseCase.Execute(report.ExportReportInput{
		View:        aggregated.View,
		Kind:        kind,
		GeneratedAt: c.now(),
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	ctx.Data(http.StatusOK, xlsxContentType, output.Data)
}

// parseKind maps the kebab-case path parameter to a report kind.
func parseKind(raw string) (report.Kind, bool) {
	name := strings.ReplaceAll(strings.ToLower(raw), "-", " ")
	for _, kind := range report.Kinds {
		if name == strings.ToLower(string(kind)) {
			return kind, true
		}
	}
	return "", false
}

// parseFilters parses the same filter query parameters as the analytics
// endpoint, writing the error response itself on malformed input.
func (c *ReportController) parseFilters(ctx *gin.Context) (analytics.AggregateSalesInput, bool) {
	input := analytics.AggregateSalesInput{
		Sources:  c.sources(),
		Category: ctx.Query("category"),
		Product:  ctx.Query("product"),
		Grouping: entity.Grouping(ctx.DefaultQuery("group_by", string(entity.GroupingDay))),
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

// handleReportError maps report and analytics errors to HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		status := http.StatusInternalServerError
		switch reportErr.Code {
		case domainerror.ErrCodeUnknownReportKind:
			status = http.StatusBadRequest
		case domainerror.ErrCodeEmptyView:
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

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
