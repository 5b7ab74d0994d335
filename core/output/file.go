package output

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FileSink writes documents below a directory.
type FileSink struct {
	fs  afero.Fs
	dir string
}

// NewFileSink creates a sink writing below dir.
func NewFileSink(fs afero.Fs, dir string) *FileSink {
	return &FileSink{fs: fs, dir: dir}
}

func (s *FileSink) WriteJSON(ctx context.Context, name string, v any) error {
	data, err := EncodeJSON(v)
	if err != nil {
		return err
	}
	return s.WriteFile(ctx, name, data)
}

func (s *FileSink) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	filename := filepath.Join(s.dir, filepath.FromSlash(name))
	if err := s.fs.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", filename, err)
	}
	if err := afero.WriteFile(s.fs, filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
