package backup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// BackupInfo describes one archive in the backup directory.
type BackupInfo struct {
	FileName   string
	SizeBytes  int64
	ModifiedAt time.Time
}

// ListBackupsOutput represents the output of a backup listing.
type ListBackupsOutput struct {
	Backups []BackupInfo
}

// ListBackupsUseCase lists available backup archives, newest first.
type ListBackupsUseCase struct {
	backupDir string
}

// NewListBackupsUseCase creates a new ListBackupsUseCase instance.
func NewListBackupsUseCase(backupDir string) *ListBackupsUseCase {
	return &ListBackupsUseCase{backupDir: backupDir}
}

// Execute lists the zip archives in the backup directory. A missing directory
// means no backups have been taken yet and is not an error.
func (uc *ListBackupsUseCase) Execute(_ context.Context) (*ListBackupsOutput, error) {
	entries, err := os.ReadDir(uc.backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return &ListBackupsOutput{Backups: []BackupInfo{}}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	backups := make([]BackupInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".zip") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat backup %s: %w", entry.Name(), err)
		}
		backups = append(backups, BackupInfo{
			FileName:   filepath.Base(entry.Name()),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime().UTC(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].ModifiedAt.After(backups[j].ModifiedAt)
	})
	return &ListBackupsOutput{Backups: backups}, nil
}
