package model

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	t.Parallel()
	err := NewValidationError("Event name is required", "name")

	if err.Code != ErrCodeValidation {
		t.Errorf("expected VALIDATION_ERROR, got %s", err.Code)
	}
	if err.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", err.StatusCode)
	}
	if err.Field != "name" {
		t.Errorf("expected field 'name', got %q", err.Field)
	}
	if err.Error() != "Event name is required" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestNewAuthenticationError_DefaultMessage(t *testing.T) {
	t.Parallel()
	err := NewAuthenticationError("")

	if err.Message != "Authentication required" {
		t.Errorf("expected default message, got %q", err.Message)
	}
	if err.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", err.StatusCode)
	}
}

func TestNewAuthorizationError_DefaultMessage(t *testing.T) {
	t.Parallel()
	err := NewAuthorizationError("")

	if err.Message != "Not authorized to perform this action" {
		t.Errorf("expected default message, got %q", err.Message)
	}
	if err.StatusCode != http.StatusForbidden {
		t.Errorf("expected 403, got %d", err.StatusCode)
	}
}

func TestNewNotFoundError_FormatsResource(t *testing.T) {
	t.Parallel()
	err := NewNotFoundError("Event")

	if err.Message != "Event not found" {
		t.Errorf("expected 'Event not found', got %q", err.Message)
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected NOT_FOUND, got %s", err.Code)
	}
	if err.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", err.StatusCode)
	}
}

func TestNewDatabaseError_RetainsCause(t *testing.T) {
	t.Parallel()
	cause := errors.New("connection reset")
	err := NewDatabaseError("Failed to create event", cause)

	if err.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", err.StatusCode)
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if err.Unwrap() != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestAppError_WriteJSON_OmitsCause(t *testing.T) {
	t.Parallel()
	appErr := NewDatabaseError("Failed to delete event", errors.New("secret internal detail"))

	rec := httptest.NewRecorder()
	appErr.WriteJSON(rec)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body["message"] != "Failed to delete event" {
		t.Errorf("unexpected message %v", body["message"])
	}
	if body["code"] != "DATABASE_ERROR" {
		t.Errorf("unexpected code %v", body["code"])
	}
	if _, ok := body["field"]; ok {
		t.Error("empty field must be omitted")
	}
	for _, v := range body {
		if s, ok := v.(string); ok && s == "secret internal detail" {
			t.Error("wrapped cause must never be serialized")
		}
	}
}

func TestErrorsAs_FindsAppError(t *testing.T) {
	t.Parallel()
	inner := NewValidationError("Sport type is required", "sport_type")
	wrapped := errors.Join(errors.New("outer"), inner)

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("expected errors.As to find the AppError")
	}
	if appErr.Field != "sport_type" {
		t.Errorf("expected field 'sport_type', got %q", appErr.Field)
	}
}
