package scan

import (
	"context"
	"io/fs"

	"github.com/vk/linecount/internal/ctxlog"
)

// Visit describes one matching file produced by a walk. Path is relative
// to the walked file system, in slash form.
type Visit struct {
	Path     string
	Category Category
}

// Stream walks the whole tree of fsys and sends a Visit for every file in
// a recognized category, in walk order, each file exactly once. The visit
// channel closes when the walk finishes; errCh then receives a single
// error (nil on success). The walk stops early if ctx is canceled.
//
// The stream is finite and single-pass. Unreadable subdirectories are
// skipped with a debug log rather than failing the walk.
func Stream(ctx context.Context, fsys fs.FS) (<-chan Visit, <-chan error) {
	out := make(chan Visit)
	errCh := make(chan error, 1)

	go func() {
		defer close(out)
		errCh <- walk(ctx, fsys, out)
		close(errCh)
	}()

	return out, errCh
}

func walk(ctx context.Context, fsys fs.FS, out chan<- Visit) error {
	logger := ctxlog.FromContext(ctx)

	return fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Mirrors os.walk tolerance: an unreadable directory is
			// skipped, not fatal.
			logger.Debug("Skipping unreadable directory entry.", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			return nil
		}

		category, ok := Categorize(d.Name())
		if !ok {
			return nil
		}

		select {
		case out <- Visit{Path: path, Category: category}:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}
