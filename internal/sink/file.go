package sink

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

var _ Sink = (*FileSink)(nil)

// FileSink writes documents into a directory
type FileSink struct {
	dir    string
	logger *zap.Logger
}

// FileSinkOption configures a FileSink
type FileSinkOption func(*FileSink)

// WithFileLogger sets the logger used for write events
func WithFileLogger(logger *zap.Logger) FileSinkOption {
	return func(s *FileSink) {
		s.logger = logger
	}
}

// NewFileSink creates a sink writing into dir. The directory is created on first write.
func NewFileSink(dir string, opts ...FileSinkOption) *FileSink {
	if dir == "" {
		dir = "."
	}
	s := &FileSink{dir: dir, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dir returns the output directory
func (s *FileSink) Dir() string {
	return s.dir
}

// Write stores data as dir/name and returns the file path
func (s *FileSink) Write(ctx context.Context, name string, data []byte) (string, error) {
	if !validName(name) {
		return "", &WriteError{Name: name, Message: "invalid file name"}
	}
	if err := ctx.Err(); err != nil {
		return "", &WriteError{Name: name, Message: "write cancelled", Cause: err}
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", &WriteError{Name: name, Message: "failed to create output directory", Cause: err}
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, "."+name+".*")
	if err != nil {
		return "", &WriteError{Name: name, Message: "failed to create temp file", Cause: err}
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return "", &WriteError{Name: name, Message: "failed to write file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return "", &WriteError{Name: name, Message: "failed to close file", Cause: err}
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return "", &WriteError{Name: name, Message: "failed to set file mode", Cause: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", &WriteError{Name: name, Message: "failed to move file into place", Cause: err}
	}

	s.logger.Info("Document written",
		zap.String("path", path),
		zap.Int("bytes", len(data)),
	)
	return path, nil
}
