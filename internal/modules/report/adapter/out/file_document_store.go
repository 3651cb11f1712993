package out

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	reportout "hunttrack/internal/modules/report/port/out"
	apperrors "hunttrack/internal/platform/errors"
)

type FileDocumentStore struct{}

func NewFileDocumentStore() reportout.DocumentStore {
	return FileDocumentStore{}
}

func (FileDocumentStore) Read(_ context.Context, path string) (string, bool, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.Storage("read report", err)
	}
	return string(raw), true, nil
}

func (FileDocumentStore) Write(_ context.Context, path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperrors.Storage("create report dir", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return apperrors.Storage("write report", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return apperrors.Storage("write report", err)
	}
	return nil
}
