// Package objectstore wraps Cloudflare R2 for photo uploads. R2 speaks the
// S3 protocol, so the client is the AWS SDK pointed at the account endpoint.
package objectstore

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// PresignExpiry bounds how long a generated upload URL stays valid.
const PresignExpiry = 10 * time.Minute

// SurrenderPhotoFolder is where owner-surrender dog photos land.
const SurrenderPhotoFolder = "rmgdri-media/dogs/surrender"

// Options configures the R2 connection.
type Options struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	// PublicBaseURL is the public bucket domain; object keys append to it.
	PublicBaseURL string
}

// Client performs uploads and presigning against one bucket.
type Client struct {
	s3            *s3.Client
	presigner     *s3.PresignClient
	bucket        string
	publicBaseURL string
}

// New builds an R2 client from static credentials.
func New(ctx context.Context, opts Options) (*Client, error) {
	if opts.AccountID == "" || opts.AccessKeyID == "" || opts.SecretAccessKey == "" || opts.Bucket == "" {
		return nil, fmt.Errorf("incomplete object storage credentials")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion("auto"),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build storage config: %w", err)
	}

	endpoint := fmt.Sprintf("https://%s.r2.cloudflarestorage.com", opts.AccountID)
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})

	return &Client{
		s3:            s3Client,
		presigner:     s3.NewPresignClient(s3Client),
		bucket:        opts.Bucket,
		publicBaseURL: strings.TrimSuffix(opts.PublicBaseURL, "/"),
	}, nil
}

// PresignPut returns a URL the browser can PUT the file to directly.
func (c *Client) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	req, err := c.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(PresignExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload: %w", err)
	}
	return req.URL, nil
}

// Put streams an object into the bucket.
func (c *Client) Put(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

// PublicURL returns the permanent public URL for a stored object.
func (c *Client) PublicURL(key string) string {
	return c.publicBaseURL + "/" + key
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ObjectKey builds a collision-resistant key under folder from a user
// supplied filename: sanitized base name, upload timestamp, random suffix,
// original extension.
func ObjectKey(folder, filename string) string {
	base := filename
	ext := ""
	if i := strings.LastIndex(filename, "."); i > 0 {
		base = filename[:i]
		ext = strings.ToLower(filename[i+1:])
	}
	base = unsafeKeyChars.ReplaceAllString(base, "-")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]

	key := fmt.Sprintf("%s/%s-%d-%s", folder, base, time.Now().UnixMilli(), suffix)
	if ext != "" {
		key += "." + ext
	}
	return key
}
