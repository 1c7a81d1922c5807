package store

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/six-cities/internal/config"
	"github.com/MKhiriev/six-cities/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectPutter is the part of *s3.Client used for uploads.
type objectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// s3FileStorage uploads files to an S3-compatible bucket.
type s3FileStorage struct {
	client objectPutter
	bucket string
	logger *logger.Logger
}

// NewS3FileStorage builds an S3 client from cfg. Static credentials and a
// custom endpoint are used when set; otherwise the default AWS credential
// chain and endpoint resolution apply.
func NewS3FileStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (FileStorage, error) {
	opts := make([]func(*awsconfig.LoadOptions) error, 0, 2)
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 file storage")
	return &s3FileStorage{client: client, bucket: cfg.Bucket, logger: logger}, nil
}

func (s *s3FileStorage) Save(ctx context.Context, name, contentType string, content io.Reader) error {
	log := logger.FromContext(ctx)

	body, ok := content.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(content)
		if err != nil {
			return fmt.Errorf("error reading upload: %w", err)
		}
		body = bytes.NewReader(data)
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(name),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Err(err).Str("func", "*s3FileStorage.Save").Str("key", name).Msg("failed to put object")
		return fmt.Errorf("error uploading %s to s3: %w", name, err)
	}

	log.Debug().Str("bucket", s.bucket).Str("key", name).Msg("file uploaded")
	return nil
}
