package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/six-cities/internal/logger"
)

// localFileStorage keeps uploaded files in a directory on the local disk.
// The same directory is served by the HTTP server under /upload.
type localFileStorage struct {
	dir    string
	logger *logger.Logger
}

// NewLocalFileStorage creates dir if needed and returns a [FileStorage]
// writing into it.
func NewLocalFileStorage(dir string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory %q: %w", dir, err)
	}

	logger.Debug().Str("dir", dir).Msg("creating local file storage")
	return &localFileStorage{dir: dir, logger: logger}, nil
}

// Save writes content to dir/name. A partially written file is removed.
func (s *localFileStorage) Save(ctx context.Context, name, contentType string, content io.Reader) error {
	log := logger.FromContext(ctx)

	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}

	path := filepath.Join(s.dir, name)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		log.Err(err).Str("func", "*localFileStorage.Save").Str("path", path).Msg("failed to create file")
		return fmt.Errorf("error creating file: %w", err)
	}

	if _, err = io.Copy(file, content); err != nil {
		file.Close()
		os.Remove(path)
		log.Err(err).Str("func", "*localFileStorage.Save").Str("path", path).Msg("failed to write file")
		return fmt.Errorf("error writing file: %w", err)
	}

	if err = file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("error closing file: %w", err)
	}

	log.Debug().Str("path", path).Str("content_type", contentType).Msg("file saved")
	return nil
}
