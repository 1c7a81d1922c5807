package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/six-cities/internal/config"
	"github.com/MKhiriev/six-cities/internal/logger"
)

// Storages groups every repository and the file storage handed to the
// service layer.
type Storages struct {
	UserRepository    UserRepository
	OfferRepository   OfferRepository
	CommentRepository CommentRepository
	FileStorage       FileStorage
}

// NewStorages builds the repositories on top of db and picks the upload
// backend: S3 when a bucket is configured, the local upload directory
// otherwise.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	var files FileStorage
	if cfg.S3.Enabled() {
		s3Storage, err := NewS3FileStorage(ctx, cfg.S3, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating s3 file storage: %w", err)
		}
		files = s3Storage
	} else {
		localStorage, err := NewLocalFileStorage(cfg.Files.UploadDir, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating local file storage: %w", err)
		}
		files = localStorage
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		OfferRepository:   NewOfferRepository(db, logger),
		CommentRepository: NewCommentRepository(db, logger),
		FileStorage:       files,
	}, nil
}
