package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ============================================================================
// Error() Interface Tests
// ============================================================================

func TestProblemDetails_Error_ReturnsFormattedMessage(t *testing.T) {
	t.Parallel()

	pd := &ProblemDetails{
		Status: http.StatusNotFound,
		Title:  "Not Found",
		Detail: "book not found",
	}

	errMsg := pd.Error()

	if !strings.Contains(errMsg, "404") {
		t.Errorf("error message should contain status code, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "Not Found") {
		t.Errorf("error message should contain title, got: %s", errMsg)
	}
	if !strings.Contains(errMsg, "book not found") {
		t.Errorf("error message should contain detail, got: %s", errMsg)
	}
}

// ============================================================================
// WriteJSON Tests
// ============================================================================

func TestProblemDetails_WriteJSON_SetsContentType(t *testing.T) {
	t.Parallel()

	pd := NewNotFoundError("book")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	contentType := rr.Header().Get("Content-Type")
	if contentType != "application/problem+json" {
		t.Errorf("expected Content-Type 'application/problem+json', got %q", contentType)
	}
}

func TestProblemDetails_WriteJSON_SetsStatusCode(t *testing.T) {
	t.Parallel()

	pd := NewForbiddenError("access denied")
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	if rr.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", rr.Code)
	}
}

func TestProblemDetails_WriteJSON_EncodesBody(t *testing.T) {
	t.Parallel()

	pd := NewValidationError([]FieldError{
		{Field: "title", Message: "title is required"},
		{Field: "total_copies", Message: "total copies must be positive"},
	})
	rr := httptest.NewRecorder()

	pd.WriteJSON(rr)

	var decoded ProblemDetails
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	if decoded.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422 in body, got %d", decoded.Status)
	}
	if len(decoded.Errors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(decoded.Errors))
	}
	if decoded.Errors[0].Field != "title" {
		t.Errorf("expected first field error on 'title', got %q", decoded.Errors[0].Field)
	}
}

// ============================================================================
// Constructor Tests
// ============================================================================

func TestNewNotFoundError_FormatsResource(t *testing.T) {
	t.Parallel()

	pd := NewNotFoundError("member")

	if pd.Status != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", pd.Status)
	}
	if pd.Detail != "member not found" {
		t.Errorf("expected detail 'member not found', got %q", pd.Detail)
	}
	if pd.Code != ErrCodeNotFound {
		t.Errorf("expected code %d, got %d", ErrCodeNotFound, pd.Code)
	}
}

func TestNewPolicyViolationError_UnprocessableEntity(t *testing.T) {
	t.Parallel()

	pd := NewPolicyViolationError("borrow limit reached")

	if pd.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422, got %d", pd.Status)
	}
	if pd.Code != ErrCodePolicyViolation {
		t.Errorf("expected code %d, got %d", ErrCodePolicyViolation, pd.Code)
	}
	if pd.Detail != "borrow limit reached" {
		t.Errorf("expected detail preserved, got %q", pd.Detail)
	}
}

func TestNewValidationError_DetailSummarizesFields(t *testing.T) {
	t.Parallel()

	pd := NewValidationError([]FieldError{
		{Field: "isbn", Message: "isbn is required"},
		{Field: "author", Message: "author is required"},
	})

	if !strings.Contains(pd.Detail, "isbn") {
		t.Errorf("detail should name the first failing field, got %q", pd.Detail)
	}
	if !strings.Contains(pd.Detail, "1 more") {
		t.Errorf("detail should count the remaining errors, got %q", pd.Detail)
	}
}

func TestNewValidationError_NoFields_GenericDetail(t *testing.T) {
	t.Parallel()

	pd := NewValidationError(nil)

	if pd.Detail != "One or more fields failed validation" {
		t.Errorf("unexpected detail: %q", pd.Detail)
	}
}

func TestNewInternalError_EmptyDetail_UsesDefault(t *testing.T) {
	t.Parallel()

	pd := NewInternalError("")

	if pd.Detail != "An unexpected error occurred" {
		t.Errorf("unexpected detail: %q", pd.Detail)
	}
	if pd.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", pd.Status)
	}
}

func TestNewRateLimitError_MentionsRetryAfter(t *testing.T) {
	t.Parallel()

	pd := NewRateLimitError(30)

	if pd.Status != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", pd.Status)
	}
	if !strings.Contains(pd.Detail, "30") {
		t.Errorf("detail should mention retry seconds, got %q", pd.Detail)
	}
}
