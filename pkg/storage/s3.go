// Package storage keeps product images in S3.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/aws/aws-sdk-go/service/s3/s3manager/s3manageriface"
	"github.com/coolbreeze/storefront/internal/config"
)

type ImageStore interface {
	// Put uploads body under key and returns its public URL.
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type S3Store struct {
	uploader s3manageriface.UploaderAPI
	bucket   string
	baseURL  string
}

func NewS3Store(cfg *config.Storage) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is not configured")
	}

	sess, err := session.NewSession(&aws.Config{Region: aws.String(cfg.Region)})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	baseURL := cfg.PublicBaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return NewS3StoreWithUploader(s3manager.NewUploader(sess), cfg.Bucket, baseURL), nil
}

func NewS3StoreWithUploader(uploader s3manageriface.UploaderAPI, bucket, baseURL string) *S3Store {
	return &S3Store{uploader: uploader, bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(key),
		Body:         body,
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=31536000, immutable"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}
