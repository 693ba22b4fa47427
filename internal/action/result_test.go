package action

import (
	"strings"
	"testing"

	"github.com/fieldday/api/internal/model"
)

// ============================================================================
// Result Tests
// ============================================================================

func TestOK_CarriesData(t *testing.T) {
	t.Parallel()
	res := OK("hello")

	if !res.Success() {
		t.Error("expected success")
	}
	if res.Data() != "hello" {
		t.Errorf("expected data 'hello', got %q", res.Data())
	}
	if res.Error() != nil {
		t.Errorf("expected nil error, got %v", res.Error())
	}
}

func TestErr_CarriesError(t *testing.T) {
	t.Parallel()
	appErr := model.NewValidationError("Event name is required", "name")
	res := Err[string](appErr)

	if res.Success() {
		t.Error("expected failure")
	}
	if res.Error() != appErr {
		t.Errorf("expected the same error back, got %v", res.Error())
	}
	if res.Data() != "" {
		t.Errorf("expected zero value data, got %q", res.Data())
	}
}

func TestResult_ZeroValue_IsFailure(t *testing.T) {
	t.Parallel()
	var res Result[int]

	if res.Success() {
		t.Error("zero value should not be a success")
	}
}

func TestUnwrap_Success_ReturnsData(t *testing.T) {
	t.Parallel()
	res := OK(42)

	if got := res.Unwrap(); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
}

func TestUnwrap_Failure_Panics(t *testing.T) {
	t.Parallel()
	res := Err[int](model.NewNotFoundError("Event"))

	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("expected panic on unwrap of failed result")
		}
		msg, ok := rec.(string)
		if !ok {
			t.Fatalf("expected string panic value, got %T", rec)
		}
		if !strings.Contains(msg, "Event not found") {
			t.Errorf("expected panic message to carry the error, got %q", msg)
		}
	}()

	res.Unwrap()
}

func TestUnwrapOr_Success_ReturnsData(t *testing.T) {
	t.Parallel()
	res := OK(7)

	if got := res.UnwrapOr(99); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestUnwrapOr_Failure_ReturnsFallback(t *testing.T) {
	t.Parallel()
	res := Err[int](model.NewDatabaseError("boom", nil))

	if got := res.UnwrapOr(99); got != 99 {
		t.Errorf("expected fallback 99, got %d", got)
	}
}
