package testutil

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	apperrors "treasury/internal/errors"
)

// AssertAppError checks that err carries the expected error code. The HTTP
// status is reported alongside so mismatches are easy to map to a route.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected %s, got nil", expectedCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected %s, got %T: %v", expectedCode, err, err)
	}

	if appErr.Code != expectedCode {
		t.Errorf("expected %s, got %s/%d (%s)", expectedCode, appErr.Code, appErr.StatusCode, appErr.Message)
	}
}

// AssertErrorResponse checks an HTTP reply against the standard error body:
// the status and {"error":{"code":...}} must both match.
func AssertErrorResponse(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus int, expectedCode string) {
	t.Helper()

	if rec.Code != expectedStatus {
		t.Fatalf("expected status %d (%s), got %d: %s", expectedStatus, expectedCode, rec.Code, rec.Body.String())
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON error body, got %q", rec.Body.String())
	}
	if body.Error.Code != expectedCode {
		t.Errorf("expected error code %s, got %q", expectedCode, body.Error.Code)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
