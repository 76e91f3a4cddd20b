package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-model-vault/internal/config"
	"github.com/MKhiriev/go-model-vault/internal/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3FileStorage is the object-store implementation of [FileStorage], built
// on the AWS SDK S3 client. It works against AWS S3 proper as well as
// S3-compatible stores (MinIO) through a custom BaseEndpoint.
type s3FileStorage struct {
	logger        *logger.Logger
	client        *s3.Client
	bucket        string
	endpoint      string
	publicBaseURL string
}

// NewS3FileStorage constructs a [FileStorage] backed by the configured
// bucket. Credentials are taken from the static access/secret key pair in
// the configuration.
func NewS3FileStorage(ctx context.Context, cfg config.Files, log *logger.Logger) (FileStorage, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKey,
			cfg.S3.SecretKey,
			"",
		)))
	if err != nil {
		log.Err(err).Str("func", "NewS3FileStorage").Msg("failed to load s3 configuration")
		return nil, fmt.Errorf("failed to load s3 configuration: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.Endpoint)
			// MinIO and most self-hosted stores require path-style addressing.
			o.UsePathStyle = true
		}
	})

	storage := &s3FileStorage{
		logger:        log,
		client:        client,
		bucket:        cfg.S3.Bucket,
		endpoint:      strings.TrimSuffix(cfg.S3.Endpoint, "/"),
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}

	storage.ensureBucket(ctx)

	return storage, nil
}

// ensureBucket creates the bucket and opens it for anonymous reads when it
// does not exist yet. Provisioning is best effort: in most deployments the
// bucket already exists and the credentials need not allow bucket
// administration.
func (s *s3FileStorage) ensureBucket(ctx context.Context) {
	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err == nil {
		return
	}

	if _, err := s.client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		var owned *types.BucketAlreadyOwnedByYou
		var exists *types.BucketAlreadyExists
		if errors.As(err, &owned) || errors.As(err, &exists) {
			return
		}

		s.logger.Err(err).Str("bucket", s.bucket).Msg("failed to create bucket")
		return
	}

	s.logger.Info().Str("bucket", s.bucket).Msg("bucket created")

	policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, s.bucket)

	if _, err := s.client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(s.bucket),
		Policy: aws.String(policy),
	}); err != nil {
		s.logger.Err(err).Str("bucket", s.bucket).Msg("failed to set public-read bucket policy")
	}
}

// UploadFile streams content into the bucket under the given key.
func (s *s3FileStorage) UploadFile(ctx context.Context, fileName string, content io.Reader, size int64) error {
	log := logger.FromContext(ctx)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(fileName),
		Body:          content,
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		log.Err(err).Str("func", "s3FileStorage.UploadFile").Str("file_name", fileName).Msg("failed to put object")
		return fmt.Errorf("failed to upload %q to bucket %q: %w", fileName, s.bucket, err)
	}

	return nil
}

// UploadFileFromPath uploads an existing local file into the bucket under
// the given key.
func (s *s3FileStorage) UploadFileFromPath(ctx context.Context, fileName string, path string) error {
	src, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open source file %q: %w", path, err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file %q: %w", path, err)
	}

	return s.UploadFile(ctx, fileName, src, info.Size())
}

// GetFileURL returns the public URL of the stored object. When a public base
// URL is configured (a CDN or reverse proxy in front of the bucket) it takes
// precedence over the raw endpoint address.
func (s *s3FileStorage) GetFileURL(fileName string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + fileName
	}

	return s.endpoint + "/" + s.bucket + "/" + fileName
}

// DeleteFile removes an object from the bucket. Deleting a missing object is
// not an error.
func (s *s3FileStorage) DeleteFile(ctx context.Context, fileName string) error {
	log := logger.FromContext(ctx)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileName),
	})
	if err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return nil
		}

		log.Err(err).Str("func", "s3FileStorage.DeleteFile").Str("file_name", fileName).Msg("failed to delete object")
		return fmt.Errorf("failed to delete %q from bucket %q: %w", fileName, s.bucket, err)
	}

	return nil
}
