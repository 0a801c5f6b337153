// Package archive moves the history database aside so a new one starts
// empty.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ArchiveHistory moves the database file at dbPath into an "archive"
// directory next to it, named with a timestamp. It returns the new path.
func ArchiveHistory(dbPath string) (string, error) {
	// Check if the database exists
	info, err := os.Stat(dbPath)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("history database does not exist: %s", dbPath)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat history database: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("history database is a directory: %s", dbPath)
	}

	// Get parent directory and create archive path
	archiveDir := filepath.Join(filepath.Dir(dbPath), "archive")
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(dbPath)
	base := strings.TrimSuffix(filepath.Base(dbPath), ext)

	// Generate timestamp
	timestamp := time.Now().Format("20060102-150405")
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", base, timestamp, ext))

	// Check if archive already exists (unlikely but possible)
	if _, err := os.Stat(archivePath); err == nil {
		// Add microseconds to make it unique
		timestamp = time.Now().Format("20060102-150405.000000")
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", base, timestamp, ext))
	}

	if err := os.Rename(dbPath, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive history database: %w", err)
	}

	// SQLite side files belong to the database
	for _, suffix := range []string{"-wal", "-shm", "-journal"} {
		if _, err := os.Stat(dbPath + suffix); err == nil {
			os.Rename(dbPath+suffix, archivePath+suffix)
		}
	}

	return archivePath, nil
}
