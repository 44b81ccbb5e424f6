package filestorage

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/SeakMengs/ClubCert/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

func NewMinioClient(cfg *config.MinioConfig) (*minio.Client, error) {
	region := cfg.REGION
	if region == "" {
		region = "us-east-1"
	}

	return minio.New(cfg.ENDPOINT, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.ACCESS_KEY, cfg.SECRET_KEY, ""),
		Secure: cfg.USE_SSL,
		Region: region,
	})
}

type MinioStorage struct {
	client    *minio.Client
	bucket    string
	overwrite bool
	logger    *zap.SugaredLogger
}

// NewMinioStorage does not touch the network, the bucket is created on the
// first upload when missing.
func NewMinioStorage(client *minio.Client, bucket string, overwrite bool, logger *zap.SugaredLogger) *MinioStorage {
	return &MinioStorage{
		client:    client,
		bucket:    bucket,
		overwrite: overwrite,
		logger:    logger,
	}
}

func (s *MinioStorage) Bucket() string {
	return s.bucket
}

func (s *MinioStorage) createBucketIfNotExists(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}

	if !exists {
		s.logger.Infof("Bucket %s does not exist, creating it", s.bucket)
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return err
		}
	}

	return nil
}

func (s *MinioStorage) objectExists(ctx context.Context, key string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}

	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return false, nil
	}
	return false, err
}

// The existence check and the upload are two requests, concurrent uploads of
// the same key can still both pass the check.
func (s *MinioStorage) UploadFile(ctx context.Context, key, path, contentType string) (UploadInfo, error) {
	if err := s.createBucketIfNotExists(ctx); err != nil {
		return UploadInfo{}, fmt.Errorf("failed to create bucket: %w", err)
	}

	if !s.overwrite {
		exists, err := s.objectExists(ctx, key)
		if err != nil {
			return UploadInfo{}, fmt.Errorf("failed to check object %s: %w", key, err)
		}
		if exists {
			return UploadInfo{}, fmt.Errorf("%w: %s/%s", ErrObjectExists, s.bucket, key)
		}
	}

	info, err := s.client.FPutObject(ctx, s.bucket, key, path, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return UploadInfo{}, fmt.Errorf("failed to upload file to S3: %w", err)
	}

	s.logger.Debugf("Uploaded %s to bucket %s (%d bytes)", key, s.bucket, info.Size)

	return UploadInfo{
		Bucket: s.bucket,
		Key:    key,
		ETag:   info.ETag,
		Size:   info.Size,
	}, nil
}

func (s *MinioStorage) PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, expiry, url.Values{})
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", key, err)
	}
	return u.String(), nil
}

func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
