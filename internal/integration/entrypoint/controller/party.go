package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brokerledger/backend/internal/application/usecase/party"
	"github.com/brokerledger/backend/internal/domain/entity"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
	"github.com/brokerledger/backend/internal/integration/entrypoint/dto"
)

// PartyController handles party directory endpoints.
type PartyController struct {
	createUseCase *party.CreatePartyUseCase
	listUseCase   *party.ListPartiesUseCase
	deleteUseCase *party.DeletePartyUseCase
}

// NewPartyController creates a new party controller instance.
func NewPartyController(
	createUseCase *party.CreatePartyUseCase,
	listUseCase *party.ListPartiesUseCase,
	deleteUseCase *party.DeletePartyUseCase,
) *PartyController {
	return &PartyController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /parties requests.
func (c *PartyController) Create(ctx *gin.Context) {
	var req dto.CreatePartyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), party.CreatePartyInput{
		Role:            entity.PartyRole(req.Role),
		Name:            req.Name,
		Contact:         req.Contact,
		Address:         req.Address,
		OwnerName:       req.OwnerName,
		OwnerPhone:      req.OwnerPhone,
		AccountantName:  req.AccountantName,
		AccountantPhone: req.AccountantPhone,
	})
	if err != nil {
		handlePartyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPartyResponse(output.Party))
}

// List handles GET /parties requests. An optional role query narrows the
// listing to one role.
func (c *PartyController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), party.ListPartiesInput{
		Role: entity.PartyRole(ctx.Query("role")),
	})
	if err != nil {
		handlePartyError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPartyListResponse(output.Parties))
}

// Delete handles DELETE /parties/:id requests.
func (c *PartyController) Delete(ctx *gin.Context) {
	partyID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid party ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), party.DeletePartyInput{PartyID: partyID}); err != nil {
		handlePartyError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handlePartyError handles party errors and returns appropriate HTTP responses.
func handlePartyError(ctx *gin.Context, err error) {
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

// getStatusCodeForPartyError maps party error codes to HTTP status codes.
func getStatusCodeForPartyError(code domainerror.PartyErrorCode) int {
	switch code {
	case domainerror.ErrCodePartyNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodePartyNameRequired,
		domainerror.ErrCodeInvalidPartyRole:
		return http.StatusBadRequest
	case domainerror.ErrCodeDuplicatePartyName,
		domainerror.ErrCodePartyInUse:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
