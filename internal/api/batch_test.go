package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestClient_UploadImagesBatchPreservesOrder(t *testing.T) {
	t.Parallel()

	var nextID atomic.Int64
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		_, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// Fail one specific file so per-item errors are observable.
		if header.Filename == "bad.jpg" {
			http.Error(w, `{"detail": "File must be an image"}`, http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(UserImage{ID: nextID.Add(1), ProcessingStatus: StatusPending})
	}))

	jobs := []UploadJob{
		{Path: writeTempImage(t, "a.jpg", 64), ImageType: ImageFront},
		{Path: writeTempImage(t, "bad.jpg", 64), ImageType: ImageSide},
		{Path: writeTempImage(t, "c.jpg", 64), ImageType: ImageBack},
	}

	outcomes := c.UploadImagesBatch(context.Background(), jobs, 2, nil)
	if len(outcomes) != 3 {
		t.Fatalf("outcomes = %d, want 3", len(outcomes))
	}
	for i, out := range outcomes {
		if out.Job.Path != jobs[i].Path {
			t.Fatalf("outcome %d for %q, want %q (order must match input)", i, out.Job.Path, jobs[i].Path)
		}
	}
	if outcomes[0].Err != nil || outcomes[0].Image == nil {
		t.Fatalf("outcome 0 = %+v, want success", outcomes[0])
	}
	if outcomes[1].Err == nil {
		t.Fatalf("outcome 1 err = nil, want per-item failure")
	}
	if outcomes[2].Err != nil || outcomes[2].Image == nil {
		t.Fatalf("outcome 2 = %+v, want success despite sibling failure", outcomes[2])
	}
}

func TestClient_UploadBatchBoundsConcurrency(t *testing.T) {
	t.Parallel()

	const parallel = 2
	var inFlight, peak atomic.Int32
	var mu sync.Mutex

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cur := inFlight.Add(1)
		mu.Lock()
		if cur > peak.Load() {
			peak.Store(cur)
		}
		mu.Unlock()
		time.Sleep(30 * time.Millisecond)
		inFlight.Add(-1)

		_ = r.ParseMultipartForm(1 << 20)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(WardrobeItem{ID: 1, ProcessingStatus: StatusPending})
	}))

	jobs := make([]UploadJob, 6)
	for i := range jobs {
		jobs[i] = UploadJob{Path: writeTempImage(t, "w"+strconv.Itoa(i)+".jpg", 32)}
	}

	outcomes := c.UploadWardrobeBatch(context.Background(), jobs, parallel, nil)
	for i, out := range outcomes {
		if out.Err != nil {
			t.Fatalf("outcome %d err = %v, want nil", i, out.Err)
		}
		if out.Item == nil {
			t.Fatalf("outcome %d item = nil, want wardrobe item", i)
		}
	}
	if got := peak.Load(); got > parallel {
		t.Fatalf("peak concurrency = %d, want <= %d", got, parallel)
	}
}

func TestClient_UploadBatchCancelledContext(t *testing.T) {
	t.Parallel()

	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []UploadJob{
		{Path: writeTempImage(t, "x.jpg", 16)},
		{Path: writeTempImage(t, "y.jpg", 16)},
	}
	outcomes := c.UploadImagesBatch(ctx, jobs, 1, nil)
	for i, out := range outcomes {
		if out.Err == nil {
			t.Fatalf("outcome %d err = nil, want context error", i)
		}
	}
}
