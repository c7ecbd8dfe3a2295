// Package writers resolves a log output setting to an io.Writer.
package writers

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupportedOutput is returned for output strings that are neither a stream name nor a path.
var ErrUnsupportedOutput = errors.New("unsupported log output")

// Kind represents the type of writer to create
type Kind string

const (
	KindStdout Kind = "stdout"
	KindStderr Kind = "stderr"
	KindFile   Kind = "file"
)

// ParseKind determines the writer kind from an output string. Empty means stderr.
func ParseKind(output string) Kind {
	switch output {
	case "", "stderr":
		return KindStderr
	case "stdout":
		return KindStdout
	}
	return KindFile
}

// Open returns a writer for the output setting and a close function for it.
// Supported formats:
//   - "" or "stderr" - os.Stderr
//   - "stdout" - os.Stdout
//   - "file:///path/to/file" or "/path/to/file" - appends to the file, creating parent directories
func Open(output string) (io.Writer, func() error, error) {
	noop := func() error { return nil }

	switch {
	case ParseKind(output) == KindStderr:
		return os.Stderr, noop, nil
	case ParseKind(output) == KindStdout:
		return os.Stdout, noop, nil
	case strings.HasPrefix(output, "file://"):
		return openFile(strings.TrimPrefix(output, "file://"))
	case isFilePath(output):
		return openFile(output)
	default:
		return nil, noop, fmt.Errorf("%w: %s", ErrUnsupportedOutput, output)
	}
}

func isFilePath(path string) bool {
	if strings.Contains(path, "://") {
		return false
	}
	return strings.ContainsAny(path, `/\`)
}

func openFile(path string) (io.Writer, func() error, error) {
	dir := filepath.Dir(path)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	return f, f.Close, nil
}
