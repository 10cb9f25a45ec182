package dataset

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
)

// NewSource creates a Source for the given file and format. An empty path
// selects the bundled dataset; an empty format is inferred from the extension.
func NewSource(path, format string, logger *slog.Logger) (Source, error) {
	if path == "" {
		return NewBundledSource(logger), nil
	}
	if format == "" {
		format = FormatFromPath(path)
	}
	format, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}
	switch format {
	case "yaml":
		return NewYAMLSource(path, logger), nil
	case "parquet":
		return NewParquetSource(path, logger), nil
	default:
		return NewJSONSource(path, logger), nil
	}
}

// ParseFormat normalizes a dataset format name.
func ParseFormat(format string) (string, error) {
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "json", "parquet":
		return f, nil
	case "yaml", "yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// FormatFromPath maps a file extension to a dataset format name.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	case ".parquet":
		return "parquet"
	default:
		return ""
	}
}
