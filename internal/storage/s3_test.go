package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
)

func TestURL(t *testing.T) {
	aws := NewS3Store(config.S3Config{Region: "sa-east-1", Bucket: "salon"})
	assert.Equal(t, "https://salon.s3.sa-east-1.amazonaws.com/a.webp", aws.URL("a.webp"))

	custom := NewS3Store(config.S3Config{Region: "auto", Bucket: "salon", Endpoint: "http://minio:9000/"})
	assert.Equal(t, "http://minio:9000/salon/a.webp", custom.URL("a.webp"))

	public := NewS3Store(config.S3Config{Region: "auto", Bucket: "salon", PublicBaseURL: "https://cdn.example.com/"})
	assert.Equal(t, "https://cdn.example.com/a.webp", public.URL("a.webp"))
}

func TestPutUsesPathStyleEndpoint(t *testing.T) {
	var (
		mu      sync.Mutex
		method  string
		path    string
		ctype   string
		payload []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		method = r.Method
		path = r.URL.Path
		ctype = r.Header.Get("Content-Type")
		payload, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	store := NewS3Store(config.S3Config{
		Endpoint:  srv.URL,
		Region:    "us-east-1",
		Bucket:    "avatars",
		AccessKey: "key",
		SecretKey: "secret",
	})

	url, err := store.Put(context.Background(), "salon/p1.webp", "image/webp", []byte("RIFF"))
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/avatars/salon/p1.webp", path)
	assert.Equal(t, "image/webp", ctype)
	assert.Contains(t, string(payload), "RIFF")
	assert.Equal(t, srv.URL+"/avatars/salon/p1.webp", url)
}
