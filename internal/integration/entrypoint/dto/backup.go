package dto

import (
	"time"

	"github.com/brokerledger/backend/internal/application/usecase/backup"
)

// RestoreBackupRequest represents the request body for a database restore.
type RestoreBackupRequest struct {
	FileName string `json:"file_name" binding:"required"`
}

// BackupResponse represents a backup archive in API responses.
type BackupResponse struct {
	FileName   string    `json:"file_name"`
	SizeBytes  int64     `json:"size_bytes"`
	ModifiedAt time.Time `json:"modified_at"`
}

// CreateBackupResponse represents the response after creating a backup.
type CreateBackupResponse struct {
	FileName  string    `json:"file_name"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}

// BackupListResponse represents the response for listing backups.
type BackupListResponse struct {
	Backups []BackupResponse `json:"backups"`
}

// RestoreBackupResponse represents the response after a restore.
type RestoreBackupResponse struct {
	RestoredFrom     string `json:"restored_from"`
	SafetyBackupName string `json:"safety_backup_name"`
}

// ToBackupListResponse converts a backup listing to its response DTO.
func ToBackupListResponse(output *backup.ListBackupsOutput) BackupListResponse {
	response := BackupListResponse{Backups: make([]BackupResponse, len(output.Backups))}
	for i, b := range output.Backups {
		response.Backups[i] = BackupResponse{
			FileName:   b.FileName,
			SizeBytes:  b.SizeBytes,
			ModifiedAt: b.ModifiedAt,
		}
	}
	return response
}
