package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/brokerledger/backend/internal/application/usecase/transaction"
	"github.com/brokerledger/backend/internal/integration/entrypoint/dto"
)

// CalculationController handles the stateless calculation preview endpoint.
type CalculationController struct {
	previewUseCase *transaction.PreviewCalculationUseCase
}

// NewCalculationController creates a new calculation controller instance.
func NewCalculationController(previewUseCase *transaction.PreviewCalculationUseCase) *CalculationController {
	return &CalculationController{previewUseCase: previewUseCase}
}

// Preview handles POST /calculations/preview requests. Nothing is persisted.
func (c *CalculationController) Preview(ctx *gin.Context) {
	var req dto.PreviewCalculationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	principal, err := decimal.NewFromString(req.Principal)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid principal amount"})
		return
	}
	interestPct, err := decimal.NewFromString(req.InterestRatePct)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid interest rate"})
		return
	}
	brokeragePct := decimal.Zero
	if req.BrokerageRatePct != "" {
		brokeragePct, err = decimal.NewFromString(req.BrokerageRatePct)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid brokerage rate"})
			return
		}
	}
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid start date format. Use YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid end date format. Use YYYY-MM-DD"})
		return
	}

	output, err := c.previewUseCase.Execute(ctx.Request.Context(), transaction.PreviewCalculationInput{
		Principal:        principal,
		InterestRatePct:  interestPct,
		BrokerageRatePct: brokeragePct,
		StartDate:        startDate,
		EndDate:          endDate,
		DayCountBasis:    req.DayCountBasis,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPreviewCalculationResponse(output))
}
