package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func fastRetry() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: 4 * time.Millisecond}
}

func TestRetryableStatus(t *testing.T) {
	tests := []struct {
		status string
		code   int
		want   bool
	}{
		{"internal error", 500, true},
		{"bad gateway", 502, true},
		{"service unavailable", 503, true},
		{"too many requests", 429, true},
		{"request timeout", 408, true},
		{"bad request", 400, false},
		{"unauthorized", 401, false},
		{"not found", 404, false},
		{"conflict", 409, false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := retryableStatus(tt.code); got != tt.want {
				t.Errorf("retryableStatus(%d) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestRetryPolicy_BackoffDoublesAndCaps(t *testing.T) {
	p := RetryPolicy{MaxRetries: 5, BaseDelay: 500 * time.Millisecond, MaxDelay: 8 * time.Second}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, time.Second},
		{3, 2 * time.Second},
		{4, 4 * time.Second},
		{5, 8 * time.Second},
		{6, 8 * time.Second}, // would be 16s, capped
		{10, 8 * time.Second},
	}

	for _, tt := range tests {
		if got := p.backoff(tt.attempt); got != tt.want {
			t.Errorf("backoff(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestClient_RetriesServerErrorsThenSucceeds(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			http.Error(w, `{"detail": "try later"}`, http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]UserImage{{ID: 1}})
	}), WithRetryPolicy(fastRetry()))

	images, err := c.Images(context.Background())
	if err != nil {
		t.Fatalf("Images returned error: %v", err)
	}
	if len(images) != 1 {
		t.Fatalf("Images = %#v, want 1 item", images)
	}
	if got := attempts.Load(); got != 3 {
		t.Fatalf("attempts = %d, want 3", got)
	}
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, `{"detail": "No pending images to process"}`, http.StatusBadRequest)
	}), WithRetryPolicy(fastRetry()))

	_, err := c.ProcessUserImages(context.Background())
	if err == nil {
		t.Fatalf("ProcessUserImages returned nil error, want 400")
	}
	if got := attempts.Load(); got != 1 {
		t.Fatalf("attempts = %d, want 1 (no retry on 4xx)", got)
	}
}

func TestClient_ExhaustedRetriesReturnAPIError(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, `{"detail": "still broken"}`, http.StatusInternalServerError)
	}), WithRetryPolicy(fastRetry()))

	_, err := c.Images(context.Background())
	if err == nil {
		t.Fatalf("Images returned nil error, want 500")
	}
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != http.StatusInternalServerError || apiErr.Detail != "still broken" {
		t.Fatalf("APIError = %#v, want status 500 detail from last attempt", apiErr)
	}
	if got := attempts.Load(); got != 4 {
		t.Fatalf("attempts = %d, want 4 (1 + 3 retries)", got)
	}
}

func TestClient_ReplaysRequestBodyOnRetry(t *testing.T) {
	t.Parallel()

	var attempts atomic.Int32
	var bodies []string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req RecommendationRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		bodies = append(bodies, req.Query)
		if attempts.Add(1) < 2 {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ProcessingResponse{Status: "processing"})
	}), WithRetryPolicy(fastRetry()))

	resp, err := c.GenerateRecommendation(context.Background(), "smart casual friday", "")
	if err != nil {
		t.Fatalf("GenerateRecommendation returned error: %v", err)
	}
	if resp.Status != "processing" {
		t.Fatalf("Status = %q, want processing", resp.Status)
	}
	if len(bodies) != 2 || bodies[0] != bodies[1] || bodies[1] != "smart casual friday" {
		t.Fatalf("bodies = %v, want identical payload on both attempts", bodies)
	}
}

func TestRetryAfter_ParsesSeconds(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}
	if got := retryAfter(resp); got != 0 {
		t.Fatalf("retryAfter(no header) = %v, want 0", got)
	}
	resp.Header.Set("Retry-After", "2")
	if got := retryAfter(resp); got != 2*time.Second {
		t.Fatalf("retryAfter(2) = %v, want 2s", got)
	}
	resp.Header.Set("Retry-After", "soon")
	if got := retryAfter(resp); got != 0 {
		t.Fatalf("retryAfter(soon) = %v, want 0", got)
	}
}
