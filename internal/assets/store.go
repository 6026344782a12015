package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/wolfman30/lalalu-site/pkg/logging"
)

var tracer = otel.Tracer("lalalu.internal.assets")

// S3API is the subset of the S3 client used by MediaStore.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Object is a media object being streamed to a client. Callers close Body.
type Object struct {
	Body          io.ReadCloser
	ContentType   string
	ContentLength int64
	ETag          string
}

// MediaStore reads and writes media objects in an S3 bucket.
type MediaStore struct {
	bucket   string
	prefix   string
	s3Client S3API
	logger   *logging.Logger
}

// NewMediaStore creates a MediaStore. If bucket is empty, the store is disabled.
func NewMediaStore(s3Client S3API, bucket, prefix string, logger *logging.Logger) *MediaStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &MediaStore{
		bucket:   bucket,
		prefix:   strings.Trim(prefix, "/"),
		s3Client: s3Client,
		logger:   logger,
	}
}

// Enabled returns true if a bucket is configured.
func (s *MediaStore) Enabled() bool {
	return s != nil && s.bucket != "" && s.s3Client != nil
}

// CleanKey normalizes a request path into an object key. It returns false for
// paths that escape the media root or name nothing.
func CleanKey(raw string) (string, bool) {
	key := strings.TrimPrefix(path.Clean("/"+raw), "/")
	if key == "" || key == "." || strings.HasPrefix(key, "..") {
		return "", false
	}
	return key, true
}

func (s *MediaStore) objectKey(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + "/" + key
}

// Get opens the object stored under key.
func (s *MediaStore) Get(ctx context.Context, key string) (*Object, error) {
	if !s.Enabled() {
		return nil, ErrNotFound
	}
	ctx, span := tracer.Start(ctx, "assets.s3.get")
	defer span.End()

	objectKey := s.objectKey(key)
	span.SetAttributes(
		attribute.String("lalalu.media.bucket", s.bucket),
		attribute.String("lalalu.media.key", objectKey),
	)

	out, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, objectKey)
		}
		span.RecordError(err)
		return nil, fmt.Errorf("assets: s3 get %s: %w", objectKey, err)
	}

	obj := &Object{
		Body:          out.Body,
		ContentType:   aws.ToString(out.ContentType),
		ContentLength: aws.ToInt64(out.ContentLength),
		ETag:          aws.ToString(out.ETag),
	}
	return obj, nil
}

// Put uploads body under key.
func (s *MediaStore) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	if !s.Enabled() {
		return nil
	}
	ctx, span := tracer.Start(ctx, "assets.s3.put")
	defer span.End()

	objectKey := s.objectKey(key)
	span.SetAttributes(attribute.String("lalalu.media.key", objectKey))

	_, err := s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("assets: s3 put %s: %w", objectKey, err)
	}
	s.logger.Debug("uploaded media object", "key", objectKey, "content_type", contentType)
	return nil
}

func isNotFound(err error) bool {
	var nsk *s3types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}
