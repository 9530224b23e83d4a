// Package archive stores raw uploaded roster files in the S3-compatible
// object store, keyed into the import history for later audit. The store is
// best-effort: the database remains the durable source of truth.
package archive

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/rmoraesb/sentinela/internal/server/config"
)

// Store saves uploaded files into one bucket of an S3-compatible backend
// (minio in development).
type Store struct {
	config *sc.Config
}

func NewStore(config *sc.Config) *Store {
	return &Store{config: config}
}

// Test seams for the AWS client constructors.
var (
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) s3Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c s3Client, ctx context.Context, in *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in)
	}
)

type s3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

func (s *Store) client(ctx context.Context) (s3Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// objectKey builds a date-partitioned storage key for one upload.
func objectKey(now time.Time) string {
	return fmt.Sprintf("imports/%d/%d/%d/%v", now.Year(), int(now.Month()), now.Day(), uuid.New())
}

// Save uploads the file content and returns the storage key.
func (s *Store) Save(ctx context.Context, content []byte) (string, error) {
	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	key := objectKey(time.Now())

	_, err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
		Body:   bytes.NewReader(content),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}
