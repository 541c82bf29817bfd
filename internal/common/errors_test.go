package common

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppErrorMessage(t *testing.T) {
	plain := NewAppError("CONFIG_ERROR", "DB_URL is required", nil)
	if got := plain.Error(); got != "CONFIG_ERROR: DB_URL is required" {
		t.Errorf("Error() = %q", got)
	}

	wrapped := NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	if got := wrapped.Error(); got != "CONFIG_ERROR: DB_URL is required: invalid input" {
		t.Errorf("Error() with cause = %q", got)
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("AppError must unwrap to its cause")
	}
}

func TestGRPCErrorCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"invalid argument", InvalidArgumentError("profile_id must be a UUID"), codes.InvalidArgument},
		{"invalid argument formatted", InvalidArgumentErrorf("ingest: %v", errors.New("no such file")), codes.InvalidArgument},
		{"not found", NotFoundError("invoice not found"), codes.NotFound},
		{"internal", InternalError("export failed"), codes.Internal},
		{"internal formatted", InternalErrorf("extraction: %v", errors.New("ocr timed out")), codes.Internal},
	}
	for _, tc := range cases {
		if got := status.Code(tc.err); got != tc.want {
			t.Errorf("%s: code = %v, want %v", tc.name, got, tc.want)
		}
	}
}
