package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/grocery-pos/backend/internal/application/usecase/billing"
	domainerror "github.com/grocery-pos/backend/internal/domain/error"
	"github.com/grocery-pos/backend/internal/domain/receipt"
	"github.com/grocery-pos/backend/internal/integration/entrypoint/dto"
)

// BillingController handles checkout endpoints: calculate, save, email,
// and print.
type BillingController struct {
	newBillNumberUseCase *billing.NewBillNumberUseCase
	calculateBillUseCase *billing.CalculateBillUseCase
	saveBillUseCase      *billing.SaveBillUseCase
	emailBillUseCase     *billing.EmailBillUseCase
	printBillUseCase     *billing.PrintBillUseCase
}

// NewBillingController creates a new billing controller instance.
func NewBillingController(
	newBillNumberUseCase *billing.NewBillNumberUseCase,
	calculateBillUseCase *billing.CalculateBillUseCase,
	saveBillUseCase *billing.SaveBillUseCase,
	emailBillUseCase *billing.EmailBillUseCase,
	printBillUseCase *billing.PrintBillUseCase,
) *BillingController {
	return &BillingController{
		newBillNumberUseCase: newBillNumberUseCase,
		calculateBillUseCase: calculateBillUseCase,
		saveBillUseCase:      saveBillUseCase,
		emailBillUseCase:     emailBillUseCase,
		printBillUseCase:     printBillUseCase,
	}
}

// Calculate handles POST /bills requests. It validates the checkout,
// issues a bill number when none is supplied, and returns the
// calculated bill without persisting anything.
func (c *BillingController) Calculate(ctx *gin.Context) {
	var request dto.CalculateBillRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.calculate(ctx, request)
	if err != nil {
		c.handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output, receipt.TimeLayout))
}

// Save handles POST /bills/save requests. It calculates the checkout
// and persists the receipt text, the per-bill row-set, and the master
// rows.
func (c *BillingController) Save(ctx *gin.Context) {
	var request dto.SaveBillRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.calculate(ctx, request.CalculateBillRequest)
	if err != nil {
		c.handleBillingError(ctx, err)
		return
	}

	saved, err := c.saveBillUseCase.Execute(ctx.Request.Context(), billing.SaveBillInput{
		Bill:        output.Bill,
		ReceiptText: output.ReceiptText,
	})
	if err != nil {
		c.handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SaveBillResponse{
		BillResponse:    dto.ToBillResponse(output, receipt.TimeLayout),
		ReceiptLocation: saved.ReceiptLocation,
		RowSetLocation:  saved.RowSetLocation,
	})
}

// Email handles POST /bills/email requests.
func (c *BillingController) Email(ctx *gin.Context) {
	var request dto.EmailBillRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.emailBillUseCase.Execute(ctx.Request.Context(), billing.EmailBillInput{
		BillNumber:     request.BillNumber,
		Recipient:      request.Recipient,
		SenderEmail:    request.SenderEmail,
		SenderPassword: request.SenderPassword,
	})
	if err != nil {
		c.handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EmailBillResponse{
		BillNumber: request.BillNumber,
		Recipient:  request.Recipient,
		ProviderID: output.ProviderID,
	})
}

// Print handles POST /bills/print requests.
func (c *BillingController) Print(ctx *gin.Context) {
	var request dto.PrintBillRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.printBillUseCase.Execute(ctx.Request.Context(), billing.PrintBillInput{
		BillNumber: request.BillNumber,
	})
	if err != nil {
		c.handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.PrintBillResponse{
		BillNumber: request.BillNumber,
		Status:     output.Status,
	})
}

// calculate issues a bill number when the request carries none, then
// runs the calculation.
func (c *BillingController) calculate(ctx *gin.Context, request dto.CalculateBillRequest) (*billing.CalculateBillOutput, error) {
	billNumber := request.BillNumber
	if billNumber == "" {
		number, err := c.newBillNumberUseCase.Execute(ctx.Request.Context())
		if err != nil {
			return nil, err
		}
		billNumber = number
	}

	return c.calculateBillUseCase.Execute(billing.CalculateBillInput{
		BillNumber:   billNumber,
		CustomerName: request.CustomerName,
		PhoneNumber:  request.PhoneNumber,
		Selections:   request.Selections(),
	})
}

// handleBillingError maps domain errors to HTTP responses.
func (c *BillingController) handleBillingError(ctx *gin.Context, err error) {
	var billingErr *domainerror.BillingError
	if errors.As(err, &billingErr) {
		ctx.JSON(c.statusForBillingError(billingErr.Code), dto.ErrorResponse{
			Error: billingErr.Message,
			Code:  string(billingErr.Code),
		})
		return
	}

	var emailErr *domainerror.EmailError
	if errors.As(err, &emailErr) {
		status := http.StatusBadGateway
		if emailErr.Code == domainerror.ErrCodeMissingRecipient ||
			emailErr.Code == domainerror.ErrCodeMissingCredentials {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: emailErr.Message,
			Code:  string(emailErr.Code),
		})
		return
	}

	var storeErr *domainerror.StoreError
	if errors.As(err, &storeErr) {
		status := http.StatusInternalServerError
		if storeErr.Code == domainerror.ErrCodeReceiptNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: storeErr.Message,
			Code:  string(storeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusForBillingError maps billing error codes to HTTP status codes.
func (c *BillingController) statusForBillingError(code domainerror.BillingErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingCustomerName,
		domainerror.ErrCodeMissingPhoneNumber,
		domainerror.ErrCodeNoItemsSelected,
		domainerror.ErrCodeUnknownProduct,
		domainerror.ErrCodeNegativeQuantity:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
