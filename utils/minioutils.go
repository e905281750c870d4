package utils

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/linskybing/ticketdesk/minio"
	minioSDK "github.com/minio/minio-go/v7"
)

// UploadObject stores content under objectName in the attachment bucket.
func UploadObject(ctx context.Context, objectName string, contentType string, contentReader io.Reader, contentSize int64) error {
	if strings.TrimSpace(objectName) == "" {
		return fmt.Errorf("object name cannot be empty")
	}

	_, err := minio.Client.PutObject(ctx, minio.BucketName, objectName, contentReader, contentSize, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// OpenObject returns a reader over the stored object. Callers must Close it.
func OpenObject(ctx context.Context, objectName string) (io.ReadCloser, error) {
	return minio.Client.GetObject(ctx, minio.BucketName, objectName, minioSDK.GetObjectOptions{})
}

// DeleteObject removes the object from the attachment bucket.
func DeleteObject(ctx context.Context, objectName string) error {
	return minio.Client.RemoveObject(ctx, minio.BucketName, objectName, minioSDK.RemoveObjectOptions{})
}
