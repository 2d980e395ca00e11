package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/johnquangdev/meeting-tracker/pkg/config"
)

// TranscriptArchive keeps a copy of every transcript revision in object storage
type TranscriptArchive struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

// NewTranscriptArchive connects to MinIO and makes sure the bucket exists
func NewTranscriptArchive(ctx context.Context, cfg *config.StorageConfig) (*TranscriptArchive, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	archive := &TranscriptArchive{
		client: minioClient,
		bucket: cfg.BucketName,
		now:    time.Now,
	}

	if err := archive.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return archive, nil
}

// ensureBucket creates the bucket when missing. Transcripts stay private.
func (a *TranscriptArchive) ensureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return nil
}

// ObjectName is the key a transcript revision is stored under
func ObjectName(userID string, meetingID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("transcripts/%s/%s/%s.txt", userID, meetingID, at.UTC().Format("20060102T150405Z"))
}

// Archive uploads one transcript revision and returns its object name
func (a *TranscriptArchive) Archive(ctx context.Context, userID string, meetingID uuid.UUID, transcript string) (string, error) {
	objectName := ObjectName(userID, meetingID, a.now())

	reader := bytes.NewReader([]byte(transcript))
	_, err := a.client.PutObject(ctx, a.bucket, objectName, reader, int64(reader.Len()), minio.PutObjectOptions{
		ContentType: "text/plain; charset=utf-8",
		UserMetadata: map[string]string{
			"meeting-id": meetingID.String(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload transcript: %w", err)
	}

	return objectName, nil
}

// URL returns a presigned download URL for an archived transcript
func (a *TranscriptArchive) URL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := a.client.PresignedGetObject(ctx, a.bucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return u.String(), nil
}
