package ui

import (
	"errors"
	"testing"
	"time"
)

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		name  string
		value string
		limit int
		want  string
	}{
		{"short value untouched", "blazer", 10, "blazer"},
		{"zero limit untouched", "blazer", 0, "blazer"},
		{"trims whitespace", "  blazer  ", 10, "blazer"},
		{"tiny limit truncates hard", "wardrobe", 3, "war"},
		{"long value gets ellipsis", "a summer outfit for a beach wedding", 15, "a summe…wedding"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateMiddle(tt.value, tt.limit); got != tt.want {
				t.Errorf("truncateMiddle(%q, %d) = %q, want %q", tt.value, tt.limit, got, tt.want)
			}
		})
	}
}

func TestHumanizeDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Millisecond, "now"},
		{30 * time.Second, "30s"},
		{5 * time.Minute, "5m"},
		{3 * time.Hour, "3h"},
	}

	for _, tt := range tests {
		if got := humanizeDuration(tt.d); got != tt.want {
			t.Errorf("humanizeDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "UNREACHABLE"},
		{"refused", errors.New("dial tcp 127.0.0.1:8000: connection refused"), "DOWN"},
		{"dns", errors.New("dial tcp: lookup api.dripdirective.com: no such host"), "UNKNOWN HOST"},
		{"other", errors.New("tls handshake failed"), "UNREACHABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyConnectionError(tt.err); got != tt.want {
				t.Errorf("classifyConnectionError = %q, want %q", got, tt.want)
			}
		})
	}
}
