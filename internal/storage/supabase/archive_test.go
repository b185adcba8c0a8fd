package supabase

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storage "github.com/supabase-community/storage-go"

	"github.com/dtroode/flashgen-server/internal/config"
)

type fakeUploader struct {
	bucket, path string
	body         string
	opts         storage.FileOptions
	err          error
}

func (f *fakeUploader) UploadFile(bucketID, relativePath string, data io.Reader, opts ...storage.FileOptions) (storage.FileUploadResponse, error) {
	f.bucket, f.path = bucketID, relativePath
	b, _ := io.ReadAll(data)
	f.body = string(b)
	if len(opts) > 0 {
		f.opts = opts[0]
	}
	return storage.FileUploadResponse{}, f.err
}

func TestArchive_Upload(t *testing.T) {
	t.Run("uploads json with upsert", func(t *testing.T) {
		up := &fakeUploader{}
		a := &Archive{client: up, bucket: "transcripts"}

		err := a.Upload(context.Background(), "flashcards/go/1.json", strings.NewReader(`{"a":1}`))
		require.NoError(t, err)
		assert.Equal(t, "transcripts", up.bucket)
		assert.Equal(t, "flashcards/go/1.json", up.path)
		assert.Equal(t, `{"a":1}`, up.body)
		require.NotNil(t, up.opts.ContentType)
		assert.Equal(t, "application/json", *up.opts.ContentType)
		require.NotNil(t, up.opts.Upsert)
		assert.True(t, *up.opts.Upsert)
	})

	t.Run("error is wrapped", func(t *testing.T) {
		a := &Archive{client: &fakeUploader{err: errors.New("403")}, bucket: "b"}
		err := a.Upload(context.Background(), "k", strings.NewReader("x"))
		assert.ErrorContains(t, err, "failed to upload transcript")
	})

	t.Run("cancelled context", func(t *testing.T) {
		up := &fakeUploader{}
		a := &Archive{client: up, bucket: "b"}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := a.Upload(ctx, "k", strings.NewReader("x"))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, up.path)
	})
}

func TestNew_TalksToStorageEndpoint(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Key":"transcripts/quiz/x.json"}`))
	}))
	defer srv.Close()

	a := New(config.Supabase{URL: srv.URL + "/", Key: "service-key", Bucket: "transcripts"})
	require.NoError(t, a.Upload(context.Background(), "quiz/x.json", strings.NewReader(`{}`)))
	assert.Equal(t, "/storage/v1/object/transcripts/quiz/x.json", gotPath)
}
