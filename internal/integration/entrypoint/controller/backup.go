package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/brokerledger/backend/internal/application/usecase/backup"
	domainerror "github.com/brokerledger/backend/internal/domain/error"
	"github.com/brokerledger/backend/internal/integration/entrypoint/dto"
)

// BackupController handles database backup endpoints.
type BackupController struct {
	createUseCase  *backup.CreateBackupUseCase
	listUseCase    *backup.ListBackupsUseCase
	restoreUseCase *backup.RestoreBackupUseCase
}

// NewBackupController creates a new backup controller instance.
func NewBackupController(
	createUseCase *backup.CreateBackupUseCase,
	listUseCase *backup.ListBackupsUseCase,
	restoreUseCase *backup.RestoreBackupUseCase,
) *BackupController {
	return &BackupController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		restoreUseCase: restoreUseCase,
	}
}

// Create handles POST /backups requests.
func (c *BackupController) Create(ctx *gin.Context) {
	output, err := c.createUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateBackupResponse{
		FileName:  output.FileName,
		SizeBytes: output.SizeBytes,
		CreatedAt: output.CreatedAt,
	})
}

// List handles GET /backups requests.
func (c *BackupController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBackupListResponse(output))
}

// Restore handles POST /backups/restore requests.
func (c *BackupController) Restore(ctx *gin.Context) {
	var req dto.RestoreBackupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.restoreUseCase.Execute(ctx.Request.Context(), backup.RestoreBackupInput{FileName: req.FileName})
	if err != nil {
		handleBackupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.RestoreBackupResponse{
		RestoredFrom:     output.RestoredFrom,
		SafetyBackupName: output.SafetyBackupName,
	})
}

// handleBackupError handles backup errors and returns appropriate HTTP responses.
func handleBackupError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrBackupNotFound):
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrInvalidBackupArchive):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, domainerror.ErrBackupUnsupportedDriver):
		ctx.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}
