package kv

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/familycar/datastore/config"
)

// s3Medium stores each key as one object under a common prefix.
// Works with AWS S3, MinIO, DigitalOcean Spaces, Cloudflare R2.
type s3Medium struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3 builds an S3-backed medium from config (S3_BUCKET, S3_REGION,
// S3_KEY, S3_SECRET, S3_ENDPOINT, S3_PREFIX).
func NewS3() (Medium, error) {
	bucket := config.S3Bucket()
	region := config.S3Region()
	key := config.S3Key()
	secret := config.S3Secret()
	endpoint := config.S3Endpoint()
	prefix := strings.Trim(config.S3Prefix(), "/")

	if bucket == "" {
		return nil, fmt.Errorf("kv/s3: S3_BUCKET is not configured")
	}

	opts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(region),
	}

	// Static credentials (required for MinIO / R2 / Spaces)
	if key != "" && secret != "" {
		opts = append(opts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(key, secret, ""),
		))
	}

	cfg, err := awscfg.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("kv/s3: load config: %w", err)
	}

	clientOpts := []func(*s3.Options){}
	if endpoint != "" {
		clientOpts = append(clientOpts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true // required for MinIO
		})
	}

	return &s3Medium{
		client: s3.NewFromConfig(cfg, clientOpts...),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (d *s3Medium) object(key string) string {
	if d.prefix == "" {
		return key + ".json"
	}
	return d.prefix + "/" + key + ".json"
}

func (d *s3Medium) Get(key string) (string, bool, error) {
	out, err := d.client.GetObject(context.Background(), &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(d.object(key)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv/s3: get %s: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", false, fmt.Errorf("kv/s3: read %s: %w", key, err)
	}
	return string(data), true, nil
}

func (d *s3Medium) Set(key, value string) error {
	_, err := d.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(d.object(key)),
		Body:        bytes.NewReader([]byte(value)),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("kv/s3: set %s: %w", key, err)
	}
	return nil
}

func (d *s3Medium) Remove(key string) error {
	_, err := d.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(d.object(key)),
	})
	if err != nil {
		return fmt.Errorf("kv/s3: remove %s: %w", key, err)
	}
	return nil
}

func (d *s3Medium) Close() error { return nil }
