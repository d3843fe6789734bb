package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Selection names which events a file holds
type Selection string

const (
	SelectionAll  Selection = "all"
	SelectionBold Selection = "bold"
)

// Storage handles writing output files
type Storage struct {
	dataDir string
}

// New creates a new Storage instance
func New(dataDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Dir returns the resolved output directory
func (s *Storage) Dir() string {
	return s.dataDir
}

// FileName returns the file name for a run date, event selection and extension
func FileName(date time.Time, selection Selection, ext string) string {
	return fmt.Sprintf("%s %s calendar items.%s", date.Format("01-02-2006"), selection, ext)
}

// WriteFile writes data to name inside the output directory and returns the
// full path. The file is replaced atomically.
func (s *Storage) WriteFile(name string, data []byte) (string, error) {
	path := filepath.Join(s.dataDir, name)

	tmp, err := os.CreateTemp(s.dataDir, ".calendar-scrape-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", name, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return "", fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("renaming %s: %w", name, err)
	}

	return path, nil
}
