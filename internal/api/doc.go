// Package api provides an HTTP client for the Dripdirective styling backend.
//
// # Overview
//
// The backend owns every entity (accounts, profiles, photos, wardrobe items,
// recommendations, try-on renders) and performs all AI work server-side. This
// package gives the rest of the app a typed, context-aware surface over that
// REST API: authentication, profile CRUD, multipart uploads with progress,
// processing-job triggers, and completion polling.
//
// # Architecture
//
//   - client.go: transport, request building, auth injection, error normalization
//   - retry.go: retryable-error classification and exponential backoff
//   - types.go: data structures mirroring the backend schema
//   - auth.go, users.go, images.go, wardrobe.go, ai.go, recommendations.go:
//     one file per backend router
//   - upload.go: multipart construction and progress accounting
//   - batch.go: concurrency-limited multi-file uploads
//   - poll.go: fixed-interval waits for background processing jobs
//
// # Request Handling
//
// All requests use context for cancellation, set Accept and User-Agent
// headers, and carry a client-generated X-Request-ID so failures can be
// correlated with backend logs. When a TokenSource is configured, requests
// are sent with a bearer Authorization header.
//
// # Error Handling
//
// Non-2xx responses are normalized into *APIError carrying the status code
// and the backend's "detail" message when one is present. Network errors,
// 5xx, 429 and 408 responses are retried with capped exponential backoff;
// other 4xx responses are returned immediately. A 401 on an authenticated
// route fires the client's OnUnauthorized hook exactly once per client so
// stored credentials can be cleared.
package api
