// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// S3Config holds the connection settings for an S3-compatible endpoint.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string // optional CDN or custom domain
}

// S3 stores media in a single public-read bucket using path-style
// addressing, which Ceph and Hetzner object storage require.
type S3 struct {
	client    *s3.Client
	bucket    string
	endpoint  string
	publicURL string
	newID     func() string
}

// NewS3 builds an S3 uploader. It returns (nil, nil) when the endpoint or
// credentials are empty so callers can fall back to the mock backend.
func NewS3(cfg S3Config) (*S3, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, nil
	}
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3: bucket is required")
	}

	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	client := s3.New(s3.Options{
		Region:       cfg.Region,
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		UsePathStyle: true,
	})

	return &S3{
		client:    client,
		bucket:    cfg.Bucket,
		endpoint:  endpoint,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		newID:     uuid.NewString,
	}, nil
}

// Upload writes the object under media/<folder>/<uuid><ext> with a
// public-read ACL and returns its public URL.
func (c *S3) Upload(ctx context.Context, obj Object) (Stored, error) {
	key := ObjectKey(obj.Folder, obj.Name, c.newID())

	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        obj.Body,
		ContentType: aws.String(obj.ContentType),
		ACL:         s3types.ObjectCannedACLPublicRead,
	}
	if obj.Size > 0 {
		input.ContentLength = aws.Int64(obj.Size)
	}

	if _, err := c.client.PutObject(ctx, input); err != nil {
		return Stored{}, fmt.Errorf("s3 upload %s/%s: %w", c.bucket, key, err)
	}
	return Stored{Key: key, URL: c.FileURL(key)}, nil
}

// Delete removes an object. An empty key is ignored.
func (c *S3) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete %s/%s: %w", c.bucket, key, err)
	}
	return nil
}

// Kind reports KindS3.
func (c *S3) Kind() string { return KindS3 }

// FileURL returns the public URL of a key, preferring the configured public
// URL over the path-style endpoint URL.
func (c *S3) FileURL(key string) string {
	if c.publicURL != "" {
		return c.publicURL + "/" + key
	}
	return c.endpoint + "/" + c.bucket + "/" + key
}

var (
	_ Uploader = (*S3)(nil)
	_ Uploader = (*Mock)(nil)
)
