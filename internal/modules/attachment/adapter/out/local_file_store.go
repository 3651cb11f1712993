package out

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	attachmentout "hunttrack/internal/modules/attachment/port/out"
	apperrors "hunttrack/internal/platform/errors"
)

type LocalFileStore struct {
	root string
}

func NewLocalFileStore(root string) attachmentout.FileStore {
	return &LocalFileStore{root: root}
}

func (s *LocalFileStore) Path(ref string) string {
	return filepath.Join(s.root, filepath.FromSlash(ref))
}

// Write stores content atomically: it lands in a temp file that is renamed
// into place once fully written.
func (s *LocalFileStore) Write(_ context.Context, ref string, content io.Reader) (int64, error) {
	target := s.Path(ref)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, apperrors.Storage("create upload dir", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return 0, apperrors.Storage("create upload", err)
	}
	n, copyErr := io.Copy(tmp, content)
	closeErr := tmp.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, apperrors.Storage("write upload", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, apperrors.Storage("write upload", err)
	}
	return n, nil
}

func (s *LocalFileStore) Open(_ context.Context, ref string) (io.ReadCloser, error) {
	f, err := os.Open(s.Path(ref))
	if err != nil {
		return nil, mapErr("open attachment", ref, err)
	}
	return f, nil
}

func (s *LocalFileStore) Stat(_ context.Context, ref string) (int64, time.Time, error) {
	info, err := os.Stat(s.Path(ref))
	if err != nil {
		return 0, time.Time{}, mapErr("stat attachment", ref, err)
	}
	if info.IsDir() {
		return 0, time.Time{}, apperrors.Invalid("ref", "%s is a directory", ref)
	}
	return info.Size(), info.ModTime(), nil
}

func (s *LocalFileStore) Remove(_ context.Context, ref string) error {
	if err := os.Remove(s.Path(ref)); err != nil {
		return mapErr("remove attachment", ref, err)
	}
	return nil
}

func mapErr(op, ref string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return apperrors.NotFound("attachment", ref)
	}
	return apperrors.Storage(op, fmt.Errorf("%s: %w", ref, err))
}
