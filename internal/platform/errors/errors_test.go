package apperrors_test

import (
	"errors"
	"testing"

	apperrors "hunttrack/internal/platform/errors"
)

func TestTaxonomyMatchesSentinels(t *testing.T) {
	t.Parallel()
	invalid := apperrors.Invalid("status", "%q is not a configured status", "Ghosted")
	if !apperrors.IsValidation(invalid) || apperrors.IsNotFound(invalid) {
		t.Fatalf("validation error should only match ErrInvalidInput: %v", invalid)
	}
	var verr *apperrors.ValidationError
	if !errors.As(invalid, &verr) || verr.Field != "status" {
		t.Fatalf("expected ValidationError for status, got %#v", invalid)
	}
	if invalid.Error() != `invalid status: "Ghosted" is not a configured status` {
		t.Fatalf("unexpected message: %s", invalid.Error())
	}

	missing := apperrors.NotFound("application", "abc")
	if !apperrors.IsNotFound(missing) {
		t.Fatalf("expected not found, got %v", missing)
	}

	cause := errors.New("disk I/O error")
	storage := apperrors.Storage("insert study log", cause)
	if !apperrors.IsStorage(storage) || !errors.Is(storage, cause) {
		t.Fatalf("storage error should match both sentinel and cause: %v", storage)
	}
	if apperrors.Storage("noop", nil) != nil {
		t.Fatalf("nil cause must stay nil")
	}
}
