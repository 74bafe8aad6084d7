package backup

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	domainerror "github.com/brokerledger/backend/internal/domain/error"
)

func writeFakeDatabase(t *testing.T, dir string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, "ledger.db")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write fake database: %v", err)
	}
	return path
}

func TestCreateBackup(t *testing.T) {
	ctx := context.Background()

	t.Run("archives the database file", func(t *testing.T) {
		dir := t.TempDir()
		dbPath := writeFakeDatabase(t, dir, []byte("sqlite content"))
		backupDir := filepath.Join(dir, "backups")
		uc := NewCreateBackupUseCase("sqlite", dbPath, backupDir)

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.SizeBytes == 0 {
			t.Error("expected a non-empty archive")
		}
		if _, err := os.Stat(out.Path); err != nil {
			t.Errorf("expected archive on disk: %v", err)
		}
	})

	t.Run("rejects non-sqlite driver", func(t *testing.T) {
		uc := NewCreateBackupUseCase("postgres", "", t.TempDir())
		_, err := uc.Execute(ctx)
		if !errors.Is(err, domainerror.ErrBackupUnsupportedDriver) {
			t.Errorf("expected ErrBackupUnsupportedDriver, got %v", err)
		}
	})
}

func TestListBackups(t *testing.T) {
	ctx := context.Background()

	t.Run("empty when directory does not exist", func(t *testing.T) {
		uc := NewListBackupsUseCase(filepath.Join(t.TempDir(), "missing"))
		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Backups) != 0 {
			t.Errorf("expected no backups, got %d", len(out.Backups))
		}
	})

	t.Run("lists archives only", func(t *testing.T) {
		dir := t.TempDir()
		dbPath := writeFakeDatabase(t, dir, []byte("sqlite content"))
		backupDir := filepath.Join(dir, "backups")
		if _, err := NewCreateBackupUseCase("sqlite", dbPath, backupDir).Execute(ctx); err != nil {
			t.Fatalf("backup failed: %v", err)
		}
		if err := os.WriteFile(filepath.Join(backupDir, "notes.txt"), []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write stray file: %v", err)
		}

		out, err := NewListBackupsUseCase(backupDir).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Backups) != 1 {
			t.Fatalf("expected 1 backup, got %d", len(out.Backups))
		}
	})
}

func TestRestoreBackup(t *testing.T) {
	ctx := context.Background()

	t.Run("restores the archived content and takes a safety backup", func(t *testing.T) {
		dir := t.TempDir()
		dbPath := writeFakeDatabase(t, dir, []byte("original"))
		backupDir := filepath.Join(dir, "backups")
		create := NewCreateBackupUseCase("sqlite", dbPath, backupDir)

		archived, err := create.Execute(ctx)
		if err != nil {
			t.Fatalf("backup failed: %v", err)
		}

		if err := os.WriteFile(dbPath, []byte("changed since backup"), 0o644); err != nil {
			t.Fatalf("failed to mutate database: %v", err)
		}

		restore := NewRestoreBackupUseCase("sqlite", dbPath, backupDir, create)
		out, err := restore.Execute(ctx, RestoreBackupInput{FileName: archived.FileName})
		if err != nil {
			t.Fatalf("restore failed: %v", err)
		}

		content, err := os.ReadFile(dbPath)
		if err != nil {
			t.Fatalf("failed to read restored database: %v", err)
		}
		if string(content) != "original" {
			t.Errorf("expected restored content, got %q", content)
		}
		if out.SafetyBackupName == "" {
			t.Error("expected a safety backup to be recorded")
		}
		if _, err := os.Stat(filepath.Join(backupDir, out.SafetyBackupName)); err != nil {
			t.Errorf("expected safety backup on disk: %v", err)
		}
	})

	t.Run("rejects unknown archive", func(t *testing.T) {
		dir := t.TempDir()
		dbPath := writeFakeDatabase(t, dir, []byte("original"))
		backupDir := filepath.Join(dir, "backups")
		create := NewCreateBackupUseCase("sqlite", dbPath, backupDir)
		restore := NewRestoreBackupUseCase("sqlite", dbPath, backupDir, create)

		_, err := restore.Execute(ctx, RestoreBackupInput{FileName: "missing.zip"})
		if !errors.Is(err, domainerror.ErrBackupNotFound) {
			t.Errorf("expected ErrBackupNotFound, got %v", err)
		}
	})

	t.Run("rejects path traversal", func(t *testing.T) {
		dir := t.TempDir()
		dbPath := writeFakeDatabase(t, dir, []byte("original"))
		backupDir := filepath.Join(dir, "backups")
		create := NewCreateBackupUseCase("sqlite", dbPath, backupDir)
		restore := NewRestoreBackupUseCase("sqlite", dbPath, backupDir, create)

		_, err := restore.Execute(ctx, RestoreBackupInput{FileName: "../outside.zip"})
		if !errors.Is(err, domainerror.ErrInvalidBackupArchive) {
			t.Errorf("expected ErrInvalidBackupArchive, got %v", err)
		}
	})

	t.Run("rejects non-sqlite driver", func(t *testing.T) {
		restore := NewRestoreBackupUseCase("postgres", "", "", nil)
		_, err := restore.Execute(ctx, RestoreBackupInput{FileName: "x.zip"})
		if !errors.Is(err, domainerror.ErrBackupUnsupportedDriver) {
			t.Errorf("expected ErrBackupUnsupportedDriver, got %v", err)
		}
	})
}
