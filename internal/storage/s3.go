package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Options configures the S3 bucket holding article images.
type Options struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	// PublicBaseURL, when set, is used instead of the bucket endpoint to
	// build public image URLs (CDN / custom domain).
	PublicBaseURL string
	PathStyle     bool
}

// Bucket stores article images in S3-compatible object storage.
type Bucket struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
	now     func() time.Time
}

func NewBucket(opts Options) (*Bucket, error) {
	if opts.Bucket == "" || opts.Region == "" || opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
		return nil, fmt.Errorf("incomplete s3 config: bucket/region/access_key_id/secret_access_key are required")
	}

	cfg := aws.Config{
		Region:      opts.Region,
		Credentials: credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.PathStyle
	})

	return &Bucket{
		client:  client,
		bucket:  opts.Bucket,
		region:  opts.Region,
		baseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
		now:     time.Now,
	}, nil
}

// Upload puts the image under a timestamped key derived from baseName and
// the original file's extension. The put refuses to overwrite an existing
// key; the millisecond timestamp keeps keys unique even when the same slug
// is reused. Returns the public URL of the stored object.
func (b *Bucket) Upload(ctx context.Context, data []byte, contentType, baseName, origName string) (string, error) {
	key := objectKey(baseName, origName, b.now())
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(b.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(data),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("max-age=3600"),
		IfNoneMatch:  aws.String("*"),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %q: %w", key, err)
	}

	return b.publicURL(key), nil
}

// Delete removes the object referenced by a public URL. The object key is
// the final path segment of the URL.
func (b *Bucket) Delete(ctx context.Context, publicURL string) error {
	key := keyFromURL(publicURL)
	if key == "" || key == "." || key == "/" {
		return fmt.Errorf("no object key in url %q", publicURL)
	}

	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %q: %w", key, err)
	}

	return nil
}

func (b *Bucket) publicURL(key string) string {
	if b.baseURL != "" {
		return b.baseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", b.bucket, b.region, key)
}

// objectKey builds "{baseName}-{unixMillis}{.ext}" with the extension taken
// from the originally uploaded file name.
func objectKey(baseName, origName string, now time.Time) string {
	ext := strings.ToLower(path.Ext(origName))
	return fmt.Sprintf("%s-%d%s", baseName, now.UnixMilli(), ext)
}

func keyFromURL(publicURL string) string {
	u, err := url.Parse(publicURL)
	if err != nil {
		// Fall back to treating the input as a bare path.
		parts := strings.Split(publicURL, "/")
		return parts[len(parts)-1]
	}
	return path.Base(u.Path)
}
