package files

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"filetable/internal/domain"
)

var (
	// ErrInvalidFileList is returned when a list breaks the path invariants
	ErrInvalidFileList = errors.New("invalid file list")
	// ErrUnsupportedFormat is returned for file extensions the loader cannot read
	ErrUnsupportedFormat = errors.New("unsupported file list format")
)

// Format identifies an on-disk file list encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

//go:embed sample.toml
var sampleList []byte

// fileList is the document shape shared by both encodings
type fileList struct {
	Files []domain.FileRecord `toml:"files" json:"files"`
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Load reads a file list from disk
func Load(path string) ([]domain.FileRecord, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file list: %w", err)
	}

	records, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Parse decodes and validates a file list.
// JSON input may be either {"files": [...]} or a bare array.
func Parse(data []byte, format Format) ([]domain.FileRecord, error) {
	var list fileList

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &list); err != nil {
			return nil, fmt.Errorf("failed to parse file list: %w", err)
		}
	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &list.Files); err != nil {
				return nil, fmt.Errorf("failed to parse file list: %w", err)
			}
		} else if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to parse file list: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	if list.Files == nil {
		list.Files = []domain.FileRecord{}
	}

	if err := Validate(list.Files); err != nil {
		return nil, err
	}
	return list.Files, nil
}

// Validate checks that every record has a non-empty, unique path
func Validate(records []domain.FileRecord) error {
	seen := make(map[string]int, len(records))
	for i, rec := range records {
		if rec.Path == "" {
			return fmt.Errorf("%w: record %d (%q) has no path", ErrInvalidFileList, i, rec.Name)
		}
		if first, dup := seen[rec.Path]; dup {
			return fmt.Errorf("%w: records %d and %d share path %q", ErrInvalidFileList, first, i, rec.Path)
		}
		seen[rec.Path] = i
	}
	return nil
}

// Sample returns the built-in demo list
func Sample() []domain.FileRecord {
	records, err := Parse(sampleList, FormatTOML)
	if err != nil {
		panic(fmt.Sprintf("embedded sample list is broken: %v", err))
	}
	return records
}
