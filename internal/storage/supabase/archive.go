// Package supabase stores generation transcripts in Supabase Storage.
package supabase

import (
	"context"
	"fmt"
	"io"
	"strings"

	storage "github.com/supabase-community/storage-go"

	"github.com/dtroode/flashgen-server/internal/config"
	"github.com/dtroode/flashgen-server/internal/model"
)

var _ model.Archive = (*Archive)(nil)

type uploader interface {
	UploadFile(bucketID, relativePath string, data io.Reader, fileOptions ...storage.FileOptions) (storage.FileUploadResponse, error)
}

type Archive struct {
	client uploader
	bucket string
}

func New(cfg config.Supabase) *Archive {
	return &Archive{
		client: storage.NewClient(strings.TrimRight(cfg.URL, "/")+"/storage/v1", cfg.Key, nil),
		bucket: cfg.Bucket,
	}
}

// Upload stores a transcript. The storage client is not context aware, so
// ctx is only checked before the call.
func (a *Archive) Upload(ctx context.Context, key string, reader io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	contentType := "application/json"
	upsert := true
	_, err := a.client.UploadFile(a.bucket, key, reader, storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return fmt.Errorf("failed to upload transcript: %w", err)
	}

	return nil
}
