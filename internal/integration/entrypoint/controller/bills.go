package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/grocery-pos/backend/internal/application/usecase/billsearch"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
	"github.com/grocery-pos/backend/internal/domain/receipt"
	"github.com/grocery-pos/backend/internal/integration/entrypoint/dto"
)

// BillsController handles bill retrieval endpoints: listing, loading,
// and searching by customer or date.
type BillsController struct {
	listBillsUseCase      *billsearch.ListBillsUseCase
	loadBillUseCase       *billsearch.LoadBillUseCase
	findByCustomerUseCase *billsearch.FindByCustomerUseCase
	findByDateUseCase     *billsearch.FindByDateUseCase
}

// NewBillsController creates a new bills controller instance.
func NewBillsController(
	listBillsUseCase *billsearch.ListBillsUseCase,
	loadBillUseCase *billsearch.LoadBillUseCase,
	findByCustomerUseCase *billsearch.FindByCustomerUseCase,
	findByDateUseCase *billsearch.FindByDateUseCase,
) *BillsController {
	return &BillsController{
		listBillsUseCase:      listBillsUseCase,
		loadBillUseCase:       loadBillUseCase,
		findByCustomerUseCase: findByCustomerUseCase,
		findByDateUseCase:     findByDateUseCase,
	}
}

// List handles GET /bills requests.
func (c *BillsController) List(ctx *gin.Context) {
	output, err := c.listBillsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to list bills",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ListBillsResponse{BillNumbers: output.BillNumbers})
}

// Get handles GET /bills/:number requests.
func (c *BillsController) Get(ctx *gin.Context) {
	billNumber := ctx.Param("number")

	output, err := c.loadBillUseCase.Execute(ctx.Request.Context(), billNumber)
	if err != nil {
		var storeErr *domainerror.StoreError
		if errors.As(err, &storeErr) && storeErr.Code == domainerror.ErrCodeReceiptNotFound {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: storeErr.Message,
				Code:  string(storeErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load bill",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.BillTextResponse{
		BillNumber:  output.BillNumber,
		ReceiptText: output.ReceiptText,
	})
}

// Search handles GET /bills/search requests. Exactly one of the
// customer and date query parameters must be given; date uses the
// DD-MM-YYYY receipt form.
func (c *BillsController) Search(ctx *gin.Context) {
	customer := ctx.Query("customer")
	dateStr := ctx.Query("date")

	if (customer == "") == (dateStr == "") {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Exactly one of customer or date is required",
		})
		return
	}

	var output *billsearch.FindBillsOutput
	var err error

	if customer != "" {
		output, err = c.findByCustomerUseCase.Execute(ctx.Request.Context(), customer)
	} else {
		var date time.Time
		date, err = time.Parse(receipt.DateLayout, dateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected DD-MM-YYYY",
			})
			return
		}
		output, err = c.findByDateUseCase.Execute(ctx.Request.Context(), date)
	}

	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to search bills",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.SearchBillsResponse{
		BillNumbers: output.BillNumbers,
		Warnings:    output.Warnings,
	})
}
