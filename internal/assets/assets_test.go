package assets

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wolfman30/lalalu-site/internal/observability/metrics"
	"github.com/wolfman30/lalalu-site/pkg/logging"
)

// mockS3Client records PutObject calls and serves GetObject from memory.
type mockS3Client struct {
	objects  map[string][]byte
	types    map[string]string
	getErr   error
	putCalls []string
}

func newMockS3() *mockS3Client {
	return &mockS3Client{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (m *mockS3Client) PutObject(_ context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(input.Key)
	m.objects[key] = body
	m.types[key] = aws.ToString(input.ContentType)
	m.putCalls = append(m.putCalls, key)
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3Client) GetObject(_ context.Context, input *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	key := aws.ToString(input.Key)
	data, ok := m.objects[key]
	if !ok {
		return nil, &s3types.NoSuchKey{Message: aws.String("key not found")}
	}
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(bytes.NewReader(data)),
		ContentType:   aws.String(m.types[key]),
		ContentLength: aws.Int64(int64(len(data))),
		ETag:          aws.String(`"etag-1"`),
	}, nil
}

func TestResolver(t *testing.T) {
	local := NewResolver(DefaultStaticPrefix, "")
	assert.Equal(t, "/static/Circadia/cleanser.png", local.URL("/Circadia/cleanser.png"))
	assert.Equal(t, "/static/Circadia/Transformations/modality%20-%202.png", local.URL("/Circadia/Transformations/modality - 2.png"))
	assert.Equal(t, "", local.URL(""))

	cdn := NewResolver(DefaultStaticPrefix, "https://cdn.example.com/")
	assert.Equal(t, "https://cdn.example.com/logo.png", cdn.URL("logo.png"))
	assert.Equal(t, "https://img.example.com/a.jpg", cdn.URL("https://img.example.com/a.jpg"))
}

func TestCleanKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"Circadia/a.jpg", "Circadia/a.jpg", true},
		{"../../etc/passwd", "etc/passwd", true},
		{"a/./b//c.png", "a/b/c.png", true},
		{"", "", false},
		{"/", "", false},
	}
	for _, tt := range tests {
		got, ok := CleanKey(tt.raw)
		assert.Equal(t, tt.ok, ok, "raw=%q", tt.raw)
		assert.Equal(t, tt.want, got, "raw=%q", tt.raw)
	}
}

func TestMediaStoreGet(t *testing.T) {
	mock := newMockS3()
	mock.objects["site/Circadia/a.jpg"] = []byte("jpeg")
	mock.types["site/Circadia/a.jpg"] = "image/jpeg"
	store := NewMediaStore(mock, "media-bucket", "/site/", logging.Discard())

	obj, err := store.Get(context.Background(), "Circadia/a.jpg")
	require.NoError(t, err)
	defer obj.Body.Close()
	assert.Equal(t, "image/jpeg", obj.ContentType)
	assert.EqualValues(t, 4, obj.ContentLength)

	_, err = store.Get(context.Background(), "missing.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMediaStoreDisabled(t *testing.T) {
	store := NewMediaStore(newMockS3(), "", "", nil)
	assert.False(t, store.Enabled())

	_, err := store.Get(context.Background(), "a.jpg")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, store.Put(context.Background(), "a.jpg", bytes.NewReader(nil), "image/jpeg"))

	var nilStore *MediaStore
	assert.False(t, nilStore.Enabled())
}

func TestMediaHandlerServesFromS3(t *testing.T) {
	mock := newMockS3()
	mock.objects["Circadia/a.jpg"] = []byte("jpeg-bytes")
	mock.types["Circadia/a.jpg"] = "image/jpeg"
	h := NewMediaHandler(NewMediaStore(mock, "bucket", "", logging.Discard()), "", metrics.NewSiteMetrics(prometheus.NewRegistry()), logging.Discard())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/Circadia/a.jpg", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, "10", rec.Header().Get("Content-Length"))
	assert.Equal(t, "jpeg-bytes", rec.Body.String())
}

func TestMediaHandlerNotFound(t *testing.T) {
	h := NewMediaHandler(NewMediaStore(newMockS3(), "bucket", "", logging.Discard()), "", nil, logging.Discard())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/nope.jpg", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMediaHandlerUpstreamError(t *testing.T) {
	mock := newMockS3()
	mock.getErr = errors.New("connection reset")
	h := NewMediaHandler(NewMediaStore(mock, "bucket", "", logging.Discard()), "", nil, logging.Discard())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/a.jpg", nil))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestMediaHandlerLocalFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Circadia"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Circadia", "a.png"), []byte("png"), 0o644))

	h := NewMediaHandler(nil, dir, nil, logging.Discard())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/Circadia/a.png", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "png", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/Circadia/missing.png", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMediaHandlerNoSource(t *testing.T) {
	h := NewMediaHandler(nil, "", nil, logging.Discard())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/media/a.jpg", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSync(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Circadia", "C2O2"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "logo.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Circadia", "C2O2", "splash.jpg"), []byte("jpg"), 0o644))

	mock := newMockS3()
	store := NewMediaStore(mock, "bucket", "site", logging.Discard())

	n, err := Sync(context.Background(), store, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.ElementsMatch(t, []string{"site/logo.png", "site/Circadia/C2O2/splash.jpg"}, mock.putCalls)
	assert.Equal(t, "image/png", mock.types["site/logo.png"])
	assert.Equal(t, "image/jpeg", mock.types["site/Circadia/C2O2/splash.jpg"])
}

func TestSyncRequiresBucket(t *testing.T) {
	_, err := Sync(context.Background(), NewMediaStore(nil, "", "", nil), t.TempDir())
	assert.Error(t, err)
}
