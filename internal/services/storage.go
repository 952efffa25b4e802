package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// PhotoStorage handles S3-compatible storage of inspection item photos.
type PhotoStorage struct {
	client     *minio.Client
	bucketName string
	region     string
}

// UploadResult contains information about an uploaded photo
type UploadResult struct {
	Bucket      string
	Key         string
	Size        int64
	ContentType string
	ETag        string
}

// NewPhotoStorage creates a new S3 photo storage service
func NewPhotoStorage(endpoint, accessKey, secretKey, bucketName, region string, useSSL bool) (*PhotoStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	return &PhotoStorage{
		client:     client,
		bucketName: bucketName,
		region:     region,
	}, nil
}

// EnsureBucket creates the bucket if it doesn't exist
func (s *PhotoStorage) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{
			Region: s.region,
		})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// Upload uploads a photo to S3
func (s *PhotoStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (*UploadResult, error) {
	info, err := s.client.PutObject(ctx, s.bucketName, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload photo: %w", err)
	}

	return &UploadResult{
		Bucket:      info.Bucket,
		Key:         info.Key,
		Size:        info.Size,
		ContentType: contentType,
		ETag:        info.ETag,
	}, nil
}

// PresignedURL generates a presigned URL for viewing a photo
func (s *PhotoStorage) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	url, err := s.client.PresignedGetObject(ctx, s.bucketName, key, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}

// Download downloads a photo from S3
func (s *PhotoStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucketName, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	return obj, nil
}

// Delete deletes a photo from S3
func (s *PhotoStorage) Delete(ctx context.Context, key string) error {
	err := s.client.RemoveObject(ctx, s.bucketName, key, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	return nil
}

// DeleteMultiple deletes multiple photos from S3
func (s *PhotoStorage) DeleteMultiple(ctx context.Context, keys []string) error {
	objectsCh := make(chan minio.ObjectInfo)

	go func() {
		defer close(objectsCh)
		for _, key := range keys {
			objectsCh <- minio.ObjectInfo{Key: key}
		}
	}()

	for err := range s.client.RemoveObjects(ctx, s.bucketName, objectsCh, minio.RemoveObjectsOptions{}) {
		if err.Err != nil {
			return fmt.Errorf("failed to delete object %s: %w", err.ObjectName, err.Err)
		}
	}

	return nil
}

// GetBucketName returns the bucket name
func (s *PhotoStorage) GetBucketName() string {
	return s.bucketName
}

var slugRegex = regexp.MustCompile(`[^a-z0-9]+`)

// PhotoKey builds the object key for an item photo:
// inspections/<id>/<category-slug>/<item-slug>/<uuid><ext>
func PhotoKey(inspectionID uuid.UUID, category, item, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("inspections/%s/%s/%s/%s%s",
		inspectionID, slugify(category), slugify(item), uuid.New(), ext)
}

func slugify(s string) string {
	s = slugRegex.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(s, "-")
}
