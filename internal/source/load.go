package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Supported format names.
const (
	FormatAuto = "auto"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	// ErrUnknownFormat is returned when a format name is not recognised.
	ErrUnknownFormat = errors.New("unknown menu format")
	// ErrEmptyDocument is returned when the source holds no document at all.
	ErrEmptyDocument = errors.New("menu document is empty")
	// ErrTrailingData is returned when content follows the first document.
	ErrTrailingData = errors.New("unexpected data after menu document")
)

// ResolveFormat maps a requested format and file path to a concrete format.
func ResolveFormat(format, path string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatAuto:
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yml", ".yaml":
			return FormatYAML, nil
		default:
			return FormatJSON, nil
		}
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Decode reads one document of the given concrete format.
func Decode(r io.Reader, format string) (Value, error) {
	switch format {
	case FormatJSON:
		return DecodeJSON(r)
	case FormatYAML:
		return DecodeYAML(r)
	default:
		return Value{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Load opens path and decodes it. The returned format is the one actually
// used after auto-detection.
func Load(path, format string) (Value, string, error) {
	resolved, err := ResolveFormat(format, path)
	if err != nil {
		return Value{}, "", err
	}
	f, err := os.Open(path)
	if err != nil {
		return Value{}, resolved, fmt.Errorf("open menu: %w", err)
	}
	defer f.Close()
	v, err := Decode(f, resolved)
	if err != nil {
		return Value{}, resolved, fmt.Errorf("load %s: %w", path, err)
	}
	return v, resolved, nil
}
