package ui

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

// classifyConnectionError maps transport failures to a short banner label.
func classifyConnectionError(err error) string {
	if err == nil {
		return "UNREACHABLE"
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "TIMEOUT"
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "DOWN"
	case strings.Contains(msg, "no such host"):
		return "UNKNOWN HOST"
	default:
		return "UNREACHABLE"
	}
}

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return "now"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
}

func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	keep := limit - 1 // room for ellipsis rune
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + "…" + string(runes[len(runes)-suffix:])
}
