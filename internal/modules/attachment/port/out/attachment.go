package out

import (
	"context"
	"io"
	"time"
)

// FileStore keeps files under a root directory addressed by slash separated
// references.
type FileStore interface {
	Write(ctx context.Context, ref string, content io.Reader) (int64, error)
	Open(ctx context.Context, ref string) (io.ReadCloser, error)
	Stat(ctx context.Context, ref string) (size int64, modified time.Time, err error)
	Remove(ctx context.Context, ref string) error
	// Path is the local file path for ref.
	Path(ref string) string
}

type PageCounter interface {
	CountPages(ctx context.Context, path string) (int, error)
}
