package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	err := New(CodeSlotConflict, "slot is no longer available", http.StatusConflict)
	want := "SLOT_CONFLICT: slot is no longer available"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := Wrap(errors.New("boom"), CodeInternal, "something failed", http.StatusInternalServerError)
	want = "INTERNAL_ERROR: something failed: boom"
	if wrapped.Error() != want {
		t.Fatalf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("constraint violation")
	appErr := Wrap(inner, CodeSlotConflict, "slot taken", http.StatusConflict)

	if !errors.Is(appErr, inner) {
		t.Fatal("errors.Is should find the wrapped error")
	}

	outer := fmt.Errorf("book interview: %w", appErr)
	got, ok := IsAppError(outer)
	if !ok {
		t.Fatal("IsAppError should find AppError through wrapping")
	}
	if got.Code != CodeSlotConflict {
		t.Fatalf("code = %q, want %q", got.Code, CodeSlotConflict)
	}
}

func TestConstructors_Status(t *testing.T) {
	cases := []struct {
		err  *AppError
		want int
	}{
		{NotFound(CodeApplicationNotFound, "x"), http.StatusNotFound},
		{BadRequest(CodeInvalidRequest, "x"), http.StatusBadRequest},
		{Unauthorized(CodeNotAuthenticated, "x"), http.StatusUnauthorized},
		{Forbidden(CodeForbidden, "x"), http.StatusForbidden},
		{Conflict(CodeDuplicateBooking, "x"), http.StatusConflict},
		{UnprocessableEntity(CodeValidationFailed, "x"), http.StatusUnprocessableEntity},
		{Internal(CodeInternal, "x"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if tc.err.HTTPStatus != tc.want {
			t.Errorf("%s: status = %d, want %d", tc.err.Code, tc.err.HTTPStatus, tc.want)
		}
	}
}

func TestWithParams(t *testing.T) {
	err := Conflict(CodeSlotConflict, "slot taken").
		WithParams(map[string]interface{}{"system_id": "sys-1"})
	if err.Params["system_id"] != "sys-1" {
		t.Fatalf("params not attached: %v", err.Params)
	}

	var nilErr *AppError
	if nilErr.WithParams(map[string]interface{}{"a": 1}) != nil {
		t.Fatal("WithParams on nil receiver should stay nil")
	}
}
