// Package backup contains database backup and restore use cases. Backups are
// zip archives of the SQLite database file plus a small metadata document;
// they only make sense for the file-backed driver.
package backup

import (
	"archive/zip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

const (
	databaseEntryName = "ledger.db"
	metadataEntryName = "metadata.json"
)

// Metadata describes one backup archive.
type Metadata struct {
	CreatedAt    time.Time `json:"createdAt"`
	SourcePath   string    `json:"sourcePath"`
	SizeBytes    int64     `json:"sizeBytes"`
	Application  string    `json:"application"`
	ArchiveLabel string    `json:"archiveLabel"`
}

// CreateBackupOutput represents the output of a backup run.
type CreateBackupOutput struct {
	FileName  string
	Path      string
	SizeBytes int64
	CreatedAt time.Time
}

// CreateBackupUseCase archives the SQLite database file.
type CreateBackupUseCase struct {
	driver       string
	databasePath string
	backupDir    string
}

// NewCreateBackupUseCase creates a new CreateBackupUseCase instance.
func NewCreateBackupUseCase(driver, databasePath, backupDir string) *CreateBackupUseCase {
	return &CreateBackupUseCase{
		driver:       driver,
		databasePath: databasePath,
		backupDir:    backupDir,
	}
}

// Execute writes a timestamped zip archive of the database file into the
// backup directory and returns its location.
func (uc *CreateBackupUseCase) Execute(_ context.Context) (*CreateBackupOutput, error) {
	if uc.driver != "sqlite" {
		return nil, domainerror.ErrBackupUnsupportedDriver
	}

	info, err := os.Stat(uc.databasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat database file: %w", err)
	}

	if err := os.MkdirAll(uc.backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	now := time.Now().UTC()
	fileName := fmt.Sprintf("brokerledger_backup_%s.zip", now.Format("20060102_150405"))
	path := filepath.Join(uc.backupDir, fileName)

	if err := writeArchive(path, uc.databasePath, Metadata{
		CreatedAt:    now,
		SourcePath:   uc.databasePath,
		SizeBytes:    info.Size(),
		Application:  "brokerledger",
		ArchiveLabel: fileName,
	}); err != nil {
		return nil, err
	}

	archived, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat backup archive: %w", err)
	}

	return &CreateBackupOutput{
		FileName:  fileName,
		Path:      path,
		SizeBytes: archived.Size(),
		CreatedAt: now,
	}, nil
}

func writeArchive(archivePath, databasePath string, meta Metadata) error {
	out, err := os.Create(archivePath)
	if err != nil {
		return fmt.Errorf("failed to create backup archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	dbEntry, err := zw.Create(databaseEntryName)
	if err != nil {
		return fmt.Errorf("failed to create database entry: %w", err)
	}
	src, err := os.Open(databasePath)
	if err != nil {
		return fmt.Errorf("failed to open database file: %w", err)
	}
	if _, err := io.Copy(dbEntry, src); err != nil {
		src.Close()
		return fmt.Errorf("failed to copy database file: %w", err)
	}
	src.Close()

	metaEntry, err := zw.Create(metadataEntryName)
	if err != nil {
		return fmt.Errorf("failed to create metadata entry: %w", err)
	}
	if err := json.NewEncoder(metaEntry).Encode(meta); err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finalize backup archive: %w", err)
	}
	return nil
}
