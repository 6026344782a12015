package assets

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
)

// Sync uploads every file under dir to the store, keyed by its slash-separated
// path relative to dir. It returns the number of files uploaded.
func Sync(ctx context.Context, store *MediaStore, dir string) (int, error) {
	if !store.Enabled() {
		return 0, fmt.Errorf("assets: sync: no media bucket configured")
	}

	uploaded := 0
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()

		contentType := mime.TypeByExtension(path.Ext(key))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		if err := store.Put(ctx, key, f, contentType); err != nil {
			return err
		}
		uploaded++
		store.logger.Info("synced media object", "key", key)
		return nil
	})
	if err != nil {
		return uploaded, fmt.Errorf("assets: sync %s: %w", dir, err)
	}
	return uploaded, nil
}
