package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// uploadPrefix keeps all portfolio assets under one folder in the bucket.
const uploadPrefix = "portfolio"

// UploadResult mirrors what the admin form expects back from an upload: the
// public URL to store on the project and the key within the bucket.
type UploadResult struct {
	URL      string `json:"url"`
	Pathname string `json:"pathname"`
}

// Uploader stores uploaded media in the blob storage bucket.
type Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewUploader builds an Uploader from the ambient AWS configuration. baseURL
// is the public prefix the bucket is served from, without a trailing slash.
func NewUploader(ctx context.Context, bucket, baseURL string) (*Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return &Uploader{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Upload streams body into the bucket under a randomized key derived from
// filename, so repeated uploads of the same file never overwrite each other.
func (u *Uploader) Upload(ctx context.Context, filename string, body io.Reader) (*UploadResult, error) {
	key := uploadKey(filename)

	contentType := mime.TypeByExtension(path.Ext(filename))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", key, err)
	}

	return &UploadResult{
		URL:      u.baseURL + "/" + key,
		Pathname: key,
	}, nil
}

func uploadKey(filename string) string {
	ext := path.Ext(filename)
	name := strings.TrimSuffix(path.Base(filename), ext)
	return fmt.Sprintf("%s/%s-%s%s", uploadPrefix, name, uuid.NewString(), ext)
}
