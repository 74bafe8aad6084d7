package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/application/adapter"
	"github.com/brokerledger/backend/internal/application/usecase/transaction"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
	"github.com/brokerledger/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	createUseCase      *transaction.CreateTransactionUseCase
	getUseCase         *transaction.GetTransactionUseCase
	listUseCase        *transaction.ListTransactionsUseCase
	updateUseCase      *transaction.UpdateTransactionUseCase
	deleteUseCase      *transaction.DeleteTransactionUseCase
	setReceivedUseCase *transaction.SetReceivedStatusUseCase
	summaryUseCase     *transaction.GetSummaryUseCase
	exportUseCase      *transaction.ExportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	setReceivedUseCase *transaction.SetReceivedStatusUseCase,
	summaryUseCase *transaction.GetSummaryUseCase,
	exportUseCase *transaction.ExportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:      createUseCase,
		getUseCase:         getUseCase,
		listUseCase:        listUseCase,
		updateUseCase:      updateUseCase,
		deleteUseCase:      deleteUseCase,
		setReceivedUseCase: setReceivedUseCase,
		summaryUseCase:     summaryUseCase,
		exportUseCase:      exportUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.TransactionTermsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	terms, ok := parseTerms(ctx, req)
	if !ok {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{Terms: terms})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Get handles GET /transactions/:id requests.
func (c *TransactionController) Get(ctx *gin.Context) {
	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{TransactionID: transactionID})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	filter, ok := parseTransactionFilter(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{Filter: filter})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	var req dto.TransactionTermsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	terms, ok := parseTerms(ctx, req)
	if !ok {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		Terms:         terms,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{TransactionID: transactionID}); err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetReceived handles PATCH /transactions/:id/received requests.
func (c *TransactionController) SetReceived(ctx *gin.Context) {
	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	var req dto.SetReceivedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.setReceivedUseCase.Execute(ctx.Request.Context(), transaction.SetReceivedStatusInput{
		TransactionID: transactionID,
		Received:      *req.Received,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Summary handles GET /transactions/summary requests.
func (c *TransactionController) Summary(ctx *gin.Context) {
	filter, ok := parseTransactionFilter(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), transaction.GetSummaryInput{Filter: filter})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionSummaryResponse(output))
}

// Export handles GET /transactions/export requests, streaming CSV.
func (c *TransactionController) Export(ctx *gin.Context) {
	filter, ok := parseTransactionFilter(ctx)
	if !ok {
		return
	}

	fileName := fmt.Sprintf("transactions_%s.csv", time.Now().UTC().Format("20060102_150405"))
	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)

	if err := c.exportUseCase.Execute(ctx.Request.Context(), transaction.ExportTransactionsInput{Filter: filter}, ctx.Writer); err != nil {
		// Headers may already be out; the broken stream is the best signal left.
		_ = ctx.Error(err)
	}
}

// parseTransactionID parses the :id path parameter, answering the request on
// failure.
func parseTransactionID(ctx *gin.Context) (uuid.UUID, bool) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return uuid.Nil, false
	}
	return transactionID, true
}

// parseTerms converts the request DTO into use-case terms, answering the
// request on failure.
func parseTerms(ctx *gin.Context, req dto.TransactionTermsRequest) (transaction.Terms, bool) {
	var terms transaction.Terms

	lenderID, err := uuid.Parse(req.LenderPartyID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid lender party ID format"})
		return terms, false
	}
	borrowerID, err := uuid.Parse(req.BorrowerPartyID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid borrower party ID format"})
		return terms, false
	}
	var intermediaryID *uuid.UUID
	if req.IntermediaryPartyID != nil && *req.IntermediaryPartyID != "" {
		id, err := uuid.Parse(*req.IntermediaryPartyID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid intermediary party ID format"})
			return terms, false
		}
		intermediaryID = &id
	}

	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid principal amount"})
		return terms, false
	}
	interestPct, err := decimal.NewFromString(req.InterestRatePct)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid interest rate"})
		return terms, false
	}
	brokeragePct := decimal.Zero
	if req.BrokerageRatePct != "" {
		brokeragePct, err = decimal.NewFromString(req.BrokerageRatePct)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid brokerage rate"})
			return terms, false
		}
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid start date format. Use YYYY-MM-DD"})
		return terms, false
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid end date format. Use YYYY-MM-DD"})
		return terms, false
	}

	return transaction.Terms{
		LenderPartyID:       lenderID,
		BorrowerPartyID:     borrowerID,
		IntermediaryPartyID: intermediaryID,
		Principal:           principal,
		Condition:           req.Condition,
		StartDate:           startDate,
		EndDate:             endDate,
		InterestRatePct:     interestPct,
		BrokerageRatePct:    brokeragePct,
		DayCountBasis:       req.DayCountBasis,
	}, true
}

// parseTransactionFilter reads the listing filters from query parameters,
// answering the request on failure.
func parseTransactionFilter(ctx *gin.Context) (adapter.TransactionFilter, bool) {
	var filter adapter.TransactionFilter

	filter.LenderPartyName = ctx.Query("lender")
	filter.BorrowerPartyName = ctx.Query("borrower")
	filter.IntermediaryPartyName = ctx.Query("intermediary")

	if receivedStr := ctx.Query("received"); receivedStr != "" {
		received, err := strconv.ParseBool(receivedStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid received flag"})
			return filter, false
		}
		filter.Received = &received
	}

	if v := ctx.Query("date_from"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date_from format. Use YYYY-MM-DD"})
			return filter, false
		}
		filter.DateRangeStart = &d
	}
	if v := ctx.Query("date_to"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid date_to format. Use YYYY-MM-DD"})
			return filter, false
		}
		filter.DateRangeEnd = &d
	}
	if v := ctx.Query("end_month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid end_month"})
			return filter, false
		}
		filter.EndMonth = &m
	}
	if v := ctx.Query("end_year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid end_year"})
			return filter, false
		}
		filter.EndYear = &y
	}
	if v := ctx.Query("ending_on"); v != "" {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid ending_on format. Use YYYY-MM-DD"})
			return filter, false
		}
		filter.EndingOn = &d
	}
	if v := ctx.Query("min_amount"); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid min_amount"})
			return filter, false
		}
		filter.MinAmount = &amount
	}
	if v := ctx.Query("max_amount"); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid max_amount"})
			return filter, false
		}
		filter.MaxAmount = &amount
	}

	return filter, true
}

// handleTransactionError handles transaction-flow errors and returns
// appropriate HTTP responses. Party errors can surface here because party
// references are validated during creation and edits.
func handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var partyErr *domainerror.PartyError
	if errors.As(err, &partyErr) {
		ctx.JSON(getStatusCodeForPartyError(partyErr.Code), dto.ErrorResponse{
			Error: partyErr.Message,
			Code:  string(partyErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidPrincipal,
		domainerror.ErrCodeInvalidInterestRate,
		domainerror.ErrCodeInvalidBrokerageRate,
		domainerror.ErrCodeEndDateBeforeStartDate,
		domainerror.ErrCodeInvalidDayCountBasis,
		domainerror.ErrCodeLenderPartyRequired,
		domainerror.ErrCodeBorrowerPartyRequired,
		domainerror.ErrCodeMissingTransactionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
