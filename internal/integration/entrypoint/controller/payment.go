package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/application/usecase/payment"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
	"github.com/brokerledger/backend/internal/integration/entrypoint/dto"
)

// PaymentController handles partial-payment ledger endpoints.
type PaymentController struct {
	recordUseCase  *payment.RecordPaymentUseCase
	listUseCase    *payment.ListPaymentsUseCase
	reverseUseCase *payment.ReversePaymentUseCase
	pendingUseCase *payment.PendingBalanceUseCase
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	recordUseCase *payment.RecordPaymentUseCase,
	listUseCase *payment.ListPaymentsUseCase,
	reverseUseCase *payment.ReversePaymentUseCase,
	pendingUseCase *payment.PendingBalanceUseCase,
) *PaymentController {
	return &PaymentController{
		recordUseCase:  recordUseCase,
		listUseCase:    listUseCase,
		reverseUseCase: reverseUseCase,
		pendingUseCase: pendingUseCase,
	}
}

// Record handles POST /transactions/:id/payments requests.
func (c *PaymentController) Record(ctx *gin.Context) {
	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payment date format. Use YYYY-MM-DD"})
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid payment amount"})
		return
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), payment.RecordPaymentInput{
		TransactionID: transactionID,
		PaymentDate:   paymentDate,
		Amount:        amount,
		Notes:         req.Notes,
	})
	if err != nil {
		handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RecordPaymentResponse{
		Payment:          dto.ToPaymentResponse(output.Payment),
		RemainingBalance: output.RemainingBalance.StringFixed(2),
		Received:         output.Received,
	})
}

// List handles GET /transactions/:id/payments requests.
func (c *PaymentController) List(ctx *gin.Context) {
	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), payment.ListPaymentsInput{TransactionID: transactionID})
	if err != nil {
		handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPaymentListResponse(output.Payments))
}

// Reverse handles DELETE /payments/:id requests.
func (c *PaymentController) Reverse(ctx *gin.Context) {
	paymentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment ID format",
		})
		return
	}

	output, err := c.reverseUseCase.Execute(ctx.Request.Context(), payment.ReversePaymentInput{PaymentID: paymentID})
	if err != nil {
		handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ReversePaymentResponse{
		TransactionID:    output.TransactionID.String(),
		RemainingBalance: output.RemainingBalance.StringFixed(2),
	})
}

// PendingBalance handles GET /transactions/:id/pending requests. An optional
// as_of query sets the reference date; it defaults to today.
func (c *PaymentController) PendingBalance(ctx *gin.Context) {
	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	var asOf time.Time
	if v := ctx.Query("as_of"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid as_of format. Use YYYY-MM-DD"})
			return
		}
		asOf = parsed
	}

	output, err := c.pendingUseCase.Execute(ctx.Request.Context(), payment.PendingBalanceInput{
		TransactionID: transactionID,
		AsOfDate:      asOf,
	})
	if err != nil {
		handlePaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPendingBalanceResponse(output))
}

// handlePaymentError handles payment-flow errors and returns appropriate
// HTTP responses. Transaction errors surface here because payments resolve
// their transaction first.
func handlePaymentError(ctx *gin.Context, err error) {
	var payErr *domainerror.PaymentError
	if errors.As(err, &payErr) {
		ctx.JSON(getStatusCodeForPaymentError(payErr.Code), dto.ErrorResponse{
			Error: payErr.Message,
			Code:  string(payErr.Code),
		})
		return
	}

	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForPaymentError maps payment error codes to HTTP status codes.
func getStatusCodeForPaymentError(code domainerror.PaymentErrorCode) int {
	switch code {
	case domainerror.ErrCodePaymentNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPaymentAmount:
		return http.StatusBadRequest
	case domainerror.ErrCodePaymentExceedsBalance:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
