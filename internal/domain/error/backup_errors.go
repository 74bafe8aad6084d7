package error

import "errors"

// Backup domain errors.
var (
	// ErrBackupUnsupportedDriver is returned when a file backup is requested
	// while the configured database driver has no single-file store.
	ErrBackupUnsupportedDriver = errors.New("database backups are only supported for the sqlite driver")

	// ErrBackupNotFound is returned when the referenced backup file does not exist.
	ErrBackupNotFound = errors.New("backup file not found")

	// ErrInvalidBackupArchive is returned when a backup archive does not
	// contain a database file.
	ErrInvalidBackupArchive = errors.New("backup archive does not contain a database file")
)
