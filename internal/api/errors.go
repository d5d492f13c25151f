package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrUnauthorized is returned when the backend rejects the bearer token.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a normalized non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Detail     string
	RequestID  string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Detail, e.StatusCode)
	}
	return fmt.Sprintf("api: %s (status %d)", http.StatusText(e.StatusCode), e.StatusCode)
}

// Is makes errors.Is(err, ErrUnauthorized) work for 401 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// maxErrorBody bounds how much of an error response body we read when
// extracting a message.
const maxErrorBody = 64 << 10

// newAPIError drains the response body and extracts a best-effort message.
// FastAPI-style backends put it under "detail", either as a string or as a
// structured validation payload.
func newAPIError(resp *http.Response, requestID string) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode, RequestID: requestID}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(body) == 0 {
		return apiErr
	}
	apiErr.Detail = extractDetail(body)
	return apiErr
}

func extractDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
		Error  string          `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if len(payload.Detail) > 0 {
			var s string
			if err := json.Unmarshal(payload.Detail, &s); err == nil {
				return strings.TrimSpace(s)
			}
			// Structured detail (validation errors); return it verbatim.
			return strings.TrimSpace(string(payload.Detail))
		}
		if payload.Error != "" {
			return strings.TrimSpace(payload.Error)
		}
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		// Cut on a rune boundary so a multi-byte character is not split.
		runes := []rune(text)
		if len(runes) > 200 {
			runes = runes[:200]
		}
		text = string(runes)
	}
	return text
}
