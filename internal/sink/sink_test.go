package sink

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestFileName(t *testing.T) {
	assert.Equal(t, "Jane Doe_resume.pdf", FileName("Jane Doe"))
	assert.Equal(t, "Jane Doe_resume.pdf", FileName("  Jane Doe "))
	assert.Equal(t, "a_b_resume.pdf", FileName("a/b"))
	assert.Equal(t, "unnamed_resume.pdf", FileName(""))
}

func TestFileSink_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s := NewFileSink(dir, WithFileLogger(zaptest.NewLogger(t)))

	location, err := s.Write(context.Background(), "Jane Doe_resume.pdf", []byte("%PDF-1.3"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Jane Doe_resume.pdf"), location)

	content, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3", string(content))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileSink_Overwrites(t *testing.T) {
	s := NewFileSink(t.TempDir())
	ctx := context.Background()

	_, err := s.Write(ctx, "a.pdf", []byte("first"))
	require.NoError(t, err)
	location, err := s.Write(ctx, "a.pdf", []byte("second"))
	require.NoError(t, err)

	content, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestFileSink_RejectsBadNames(t *testing.T) {
	s := NewFileSink(t.TempDir())
	for _, name := range []string{"", ".", "..", "../escape.pdf", "a/b.pdf"} {
		_, err := s.Write(context.Background(), name, []byte("x"))
		var writeErr *WriteError
		assert.True(t, errors.As(err, &writeErr), name)
	}
}

func TestFileSink_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileSink(t.TempDir()).Write(ctx, "a.pdf", []byte("x"))
	assert.True(t, errors.Is(err, context.Canceled))
}

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		f.body, _ = io.ReadAll(params.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Sink_Write(t *testing.T) {
	fake := &fakePutter{}
	s := newS3Sink(fake, S3Config{Bucket: "resumes", Prefix: "/2024/"}, "eu-central-1", "")

	location, err := s.Write(context.Background(), "Jane Doe_resume.pdf", []byte("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, "resumes", *fake.input.Bucket)
	assert.Equal(t, "2024/Jane Doe_resume.pdf", *fake.input.Key)
	assert.Equal(t, ContentTypePDF, *fake.input.ContentType)
	assert.Equal(t, int64(4), *fake.input.ContentLength)
	assert.Equal(t, "%PDF", string(fake.body))
	assert.Equal(t, "https://resumes.s3.eu-central-1.amazonaws.com/2024/Jane%20Doe_resume.pdf", location)
}

func TestS3Sink_ObjectURL(t *testing.T) {
	pathStyle := newS3Sink(&fakePutter{}, S3Config{Bucket: "b", UsePathStyle: true}, "us-east-1", "http://localhost:9000/")
	assert.Equal(t, "http://localhost:9000/b/k.pdf", pathStyle.ObjectURL("k.pdf"))

	virtual := newS3Sink(&fakePutter{}, S3Config{Bucket: "b"}, "us-east-1", "https://minio.internal")
	assert.Equal(t, "https://b.minio.internal/k.pdf", virtual.ObjectURL("k.pdf"))
}

func TestS3Sink_UploadError(t *testing.T) {
	s := newS3Sink(&fakePutter{err: errors.New("boom")}, S3Config{Bucket: "b"}, "us-east-1", "")

	_, err := s.Write(context.Background(), "a.pdf", []byte("x"))
	var writeErr *WriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Contains(t, writeErr.Error(), "boom")
}

func TestNewS3Sink_Validation(t *testing.T) {
	_, err := NewS3Sink(context.Background(), S3Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bucket is required")

	s, err := NewS3Sink(context.Background(), S3Config{
		Bucket:       "resumes",
		Endpoint:     "localhost:9000",
		AccessKey:    "key",
		SecretKey:    "secret",
		UsePathStyle: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://localhost:9000/resumes/a.pdf", s.ObjectURL("a.pdf"))
	assert.Equal(t, "us-east-1", s.region)
}
