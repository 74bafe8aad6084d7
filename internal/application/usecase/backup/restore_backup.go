package backup

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

// RestoreBackupInput names the archive to restore from.
type RestoreBackupInput struct {
	FileName string
}

// RestoreBackupOutput reports the safety backup taken before the restore.
type RestoreBackupOutput struct {
	RestoredFrom     string
	SafetyBackupName string
}

// RestoreBackupUseCase replaces the database file with the copy held in a
// backup archive. A fresh safety backup of the current state is taken first
// so a bad restore can itself be undone.
type RestoreBackupUseCase struct {
	driver       string
	databasePath string
	backupDir    string
	createBackup *CreateBackupUseCase
}

// NewRestoreBackupUseCase creates a new RestoreBackupUseCase instance.
func NewRestoreBackupUseCase(driver, databasePath, backupDir string, createBackup *CreateBackupUseCase) *RestoreBackupUseCase {
	return &RestoreBackupUseCase{
		driver:       driver,
		databasePath: databasePath,
		backupDir:    backupDir,
		createBackup: createBackup,
	}
}

// Execute restores the database file from the named archive. The server must
// be the only writer while this runs; connections opened before the restore
// see the new file on their next statement because SQLite re-reads pages from
// disk.
func (uc *RestoreBackupUseCase) Execute(ctx context.Context, input RestoreBackupInput) (*RestoreBackupOutput, error) {
	if uc.driver != "sqlite" {
		return nil, domainerror.ErrBackupUnsupportedDriver
	}

	// Reject path traversal in the user-supplied name.
	if input.FileName != filepath.Base(input.FileName) || !strings.HasSuffix(input.FileName, ".zip") {
		return nil, domainerror.ErrInvalidBackupArchive
	}

	archivePath := filepath.Join(uc.backupDir, input.FileName)
	if _, err := os.Stat(archivePath); err != nil {
		if os.IsNotExist(err) {
			return nil, domainerror.ErrBackupNotFound
		}
		return nil, fmt.Errorf("failed to stat backup archive: %w", err)
	}

	safety, err := uc.createBackup.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to take safety backup before restore: %w", err)
	}
	slog.Info("Safety backup taken before restore", "file", safety.FileName)

	if err := extractDatabase(archivePath, uc.databasePath); err != nil {
		return nil, err
	}

	return &RestoreBackupOutput{
		RestoredFrom:     input.FileName,
		SafetyBackupName: safety.FileName,
	}, nil
}

// extractDatabase pulls the database entry out of the archive and moves it
// over the live file. The write goes to a temp file first so a torn extract
// never corrupts the database.
func extractDatabase(archivePath, databasePath string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return domainerror.ErrInvalidBackupArchive
	}
	defer zr.Close()

	var dbFile *zip.File
	for _, f := range zr.File {
		if f.Name == databaseEntryName {
			dbFile = f
			break
		}
	}
	if dbFile == nil {
		return domainerror.ErrInvalidBackupArchive
	}

	src, err := dbFile.Open()
	if err != nil {
		return fmt.Errorf("failed to open database entry: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp(filepath.Dir(databasePath), "restore-*.db")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to extract database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, databasePath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace database file: %w", err)
	}
	return nil
}
