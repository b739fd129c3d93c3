package cloud

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// s3API is the part of the S3 client used for artifact storage.
type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	s3.ListObjectsV2APIClient
}

// S3Client stores pipeline artifacts in a bucket.
type S3Client struct {
	svc     s3API
	presign *s3.PresignClient
	bucket  string
	now     func() time.Time
}

// NewS3Client loads the default AWS config for region.
func NewS3Client(ctx context.Context, region, bucket string) (*S3Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}
	svc := s3.NewFromConfig(cfg)
	return &S3Client{
		svc:     svc,
		presign: s3.NewPresignClient(svc),
		bucket:  bucket,
		now:     time.Now,
	}, nil
}

var contentTypes = map[string]string{
	".json": "application/json",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".png":  "image/png",
}

// Publishable reports whether a file in the output directory is uploaded.
func Publishable(name string) bool {
	_, ok := contentTypes[strings.ToLower(filepath.Ext(name))]
	return ok
}

// UploadArtifact puts one object, tagging it with its upload time.
func (c *S3Client) UploadArtifact(ctx context.Context, key string, data []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
		Metadata: map[string]string{
			"uploaded-at": c.now().UTC().Format(time.RFC3339),
		},
	}
	if _, err := c.svc.PutObject(ctx, input); err != nil {
		return fmt.Errorf("failed to upload %s to S3: %w", key, err)
	}
	return nil
}

// UploadDir uploads every publishable file directly inside dir under prefix and
// returns the keys in name order.
func (c *S3Client) UploadDir(ctx context.Context, dir, prefix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var keys []string
	for _, e := range entries {
		if e.IsDir() || !Publishable(e.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return keys, fmt.Errorf("failed to read %s: %w", e.Name(), err)
		}
		key := path.Join(prefix, e.Name())
		if err := c.UploadArtifact(ctx, key, data, contentTypes[strings.ToLower(filepath.Ext(e.Name()))]); err != nil {
			return keys, err
		}
		log.Info().Str("bucket", c.bucket).Str("key", key).Int("bytes", len(data)).Msg("artifact uploaded")
		keys = append(keys, key)
	}
	return keys, nil
}

// PresignArtifact returns a download URL valid for one hour.
func (c *S3Client) PresignArtifact(ctx context.Context, key string) (string, error) {
	if c.presign == nil {
		return "", fmt.Errorf("presigning is not configured")
	}
	res, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = time.Hour
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}
	return res.URL, nil
}

// ListArtifacts lists the keys under prefix.
func (c *S3Client) ListArtifacts(ctx context.Context, prefix string) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(prefix),
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(c.svc, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}
