// Package report persists assignment results.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/okian/squads/internal/domain/heuristic"
	"github.com/okian/squads/pkg/logger"
)

// FileName is the name of the report inside the output directory.
const FileName = "output.json"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer writes results as FileName under a directory.
type Writer struct {
	dir string
	log logger.Logger
}

// Option configures a Writer.
type Option func(*Writer)

// WithLogger sets the writer logger.
func WithLogger(l logger.Logger) Option {
	return func(w *Writer) {
		if l != nil {
			w.log = l
		}
	}
}

// NewWriter creates a writer targeting dir. An empty dir means the working
// directory.
func NewWriter(dir string, opts ...Option) *Writer {
	if dir == "" {
		dir = "."
	}
	w := &Writer{dir: filepath.Clean(dir), log: logger.Nop()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Write creates the output directory if needed and replaces the report with
// res. It returns the path written.
func (w *Writer) Write(ctx context.Context, res *heuristic.Result) (string, error) {
	body, err := res.JSON()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeReport, err)
	}
	body = append(body, '\n')

	if err := os.MkdirAll(w.dir, dirPerm); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	path := filepath.Join(w.dir, FileName)
	tmp, err := os.CreateTemp(w.dir, "."+FileName+"-*")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after a successful rename

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteReport, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteReport, err)
	}

	w.log.Info(ctx, "report written",
		logger.String("path", path),
		logger.Int("groups", len(res.Groups)),
		logger.Int("leaders", len(res.Leaders)))
	return path, nil
}
