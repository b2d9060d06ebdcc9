// Package storage implements the StorageService against Firebase Storage.
package storage

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/DiegoG0477/koru-api/config"
	"github.com/DiegoG0477/koru-api/internal/domain/service"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

const uploadTimeout = 30 * time.Second

type firebaseStorage struct {
	bucket     *storage.BucketHandle
	bucketName string
}

// NewFirebaseStorage creates a storage service backed by a Firebase Storage bucket.
func NewFirebaseStorage(ctx context.Context, cfg *config.Config) (service.StorageService, error) {
	if cfg.Firebase == nil || cfg.Firebase.StorageBucket == "" {
		return nil, errors.New("firebase storage bucket must be configured")
	}

	opt := option.WithCredentialsFile(cfg.Firebase.CredentialsPath)
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.Firebase.ProjectID,
		StorageBucket: cfg.Firebase.StorageBucket,
	}, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get storage client")
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get default bucket")
	}

	return &firebaseStorage{
		bucket:     bucket,
		bucketName: cfg.Firebase.StorageBucket,
	}, nil
}

// UploadImage writes the image under folder/ with a random object name and
// returns the public download URL.
func (s *firebaseStorage) UploadImage(ctx context.Context, folder string, upload *service.ImageUpload) (string, error) {
	if upload == nil || len(upload.Data) == 0 {
		return "", errors.New("empty image upload")
	}

	objectName := path.Join(folder, uuid.New().String()+path.Ext(upload.FileName))

	uploadCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	writer := s.bucket.Object(objectName).NewWriter(uploadCtx)
	writer.ContentType = upload.ContentType

	if _, err := writer.Write(upload.Data); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write image to bucket")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image upload")
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucketName, objectName), nil
}
