package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

var _ Sink = (*S3Sink)(nil)

// S3Config describes an S3-compatible bucket (AWS S3, MinIO, etc.)
type S3Config struct {
	Bucket       string
	Region       string
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool
	Prefix       string
}

// putObjectAPI is the subset of the S3 client used by the sink
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Sink uploads documents to a bucket
type S3Sink struct {
	client       putObjectAPI
	bucket       string
	prefix       string
	endpoint     string
	region       string
	usePathStyle bool
	logger       *zap.Logger
}

// S3SinkOption configures an S3Sink
type S3SinkOption func(*S3Sink)

// WithS3Logger sets the logger used for upload events
func WithS3Logger(logger *zap.Logger) S3SinkOption {
	return func(s *S3Sink) {
		s.logger = logger
	}
}

// NewS3Sink creates a sink from configuration. Static credentials are used
// when both keys are set; otherwise the default AWS credential chain applies.
func NewS3Sink(ctx context.Context, cfg S3Config, opts ...S3SinkOption) (*S3Sink, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket is required")
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	endpoint := cfg.Endpoint
	if endpoint != "" {
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}
		if _, err := url.Parse(endpoint); err != nil {
			return nil, fmt.Errorf("invalid s3 endpoint: %w", err)
		}
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.UsePathStyle
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	s := newS3Sink(client, cfg, region, endpoint)
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func newS3Sink(client putObjectAPI, cfg S3Config, region, endpoint string) *S3Sink {
	return &S3Sink{
		client:       client,
		bucket:       cfg.Bucket,
		prefix:       strings.Trim(cfg.Prefix, "/"),
		endpoint:     strings.TrimRight(endpoint, "/"),
		region:       region,
		usePathStyle: cfg.UsePathStyle,
		logger:       zap.NewNop(),
	}
}

// Key returns the object key used for name
func (s *S3Sink) Key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// ObjectURL returns the URL of the object stored under key
func (s *S3Sink) ObjectURL(key string) string {
	escaped := (&url.URL{Path: key}).EscapedPath()
	switch {
	case s.endpoint != "" && s.usePathStyle:
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, escaped)
	case s.endpoint != "":
		u, err := url.Parse(s.endpoint)
		if err != nil {
			return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, escaped)
		}
		return fmt.Sprintf("%s://%s.%s/%s", u.Scheme, s.bucket, u.Host, escaped)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
	}
}

// Write uploads data and returns the object URL
func (s *S3Sink) Write(ctx context.Context, name string, data []byte) (string, error) {
	if !validName(name) {
		return "", &WriteError{Name: name, Message: "invalid object name"}
	}

	key := s.Key(name)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String(ContentTypePDF),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return "", &WriteError{Name: name, Message: fmt.Sprintf("failed to upload to bucket %s", s.bucket), Cause: err}
	}

	location := s.ObjectURL(key)
	s.logger.Info("Document uploaded",
		zap.String("bucket", s.bucket),
		zap.String("key", key),
		zap.Int("bytes", len(data)),
	)
	return location, nil
}
