package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"
)

func fastWait() WaitOptions {
	return WaitOptions{Interval: 5 * time.Millisecond, Timeout: 500 * time.Millisecond}
}

func TestClient_WaitImagesProcessedCompletes(t *testing.T) {
	t.Parallel()

	var polls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := StatusProcessing
		if polls.Add(1) >= 3 {
			status = StatusCompleted
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]UserImage{
			{ID: 1, ProcessingStatus: StatusCompleted},
			{ID: 2, ProcessingStatus: status},
		})
	}))

	images, err := c.WaitImagesProcessed(context.Background(), fastWait())
	if err != nil {
		t.Fatalf("WaitImagesProcessed returned error: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("images = %d, want 2", len(images))
	}
	if polls.Load() < 3 {
		t.Fatalf("polls = %d, want >= 3", polls.Load())
	}
}

func TestClient_WaitTreatsFailedAsTerminal(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]WardrobeItemWithImages{
			{WardrobeItem: WardrobeItem{ID: 1, ProcessingStatus: StatusCompleted}},
			{WardrobeItem: WardrobeItem{ID: 2, ProcessingStatus: StatusFailed}},
		})
	}))

	items, err := c.WaitWardrobeProcessed(context.Background(), fastWait())
	if err != nil {
		t.Fatalf("WaitWardrobeProcessed returned error: %v", err)
	}
	if len(items) != 2 || items[1].ProcessingStatus != StatusFailed {
		t.Fatalf("items = %#v, want failed item reported, not retried forever", items)
	}
}

func TestClient_WaitTimesOutWithLastSnapshot(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]UserImage{{ID: 1, ProcessingStatus: StatusProcessing}})
	}))

	opts := WaitOptions{Interval: 5 * time.Millisecond, Timeout: 30 * time.Millisecond}
	images, err := c.WaitImagesProcessed(context.Background(), opts)
	if !errors.Is(err, ErrWaitTimeout) {
		t.Fatalf("error = %v, want ErrWaitTimeout", err)
	}
	if len(images) != 1 {
		t.Fatalf("images = %#v, want last snapshot alongside timeout", images)
	}
}

func TestClient_WaitSurvivesTransientErrors(t *testing.T) {
	t.Parallel()

	var polls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if polls.Add(1) == 1 {
			http.Error(w, "hiccup", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Recommendation{
			ID:      9,
			Status:  "completed",
			Outfits: []Outfit{{OutfitName: "Linen summer"}},
		})
	}), WithRetryPolicy(RetryPolicy{MaxRetries: 0, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}))

	rec, err := c.WaitRecommendation(context.Background(), 9, fastWait())
	if err != nil {
		t.Fatalf("WaitRecommendation returned error: %v", err)
	}
	if rec == nil || rec.ID != 9 || !rec.Completed() {
		t.Fatalf("rec = %#v, want completed id=9", rec)
	}
}

func TestClient_WaitNewRecommendationFindsNewest(t *testing.T) {
	t.Parallel()

	var polls atomic.Int32
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recs := []Recommendation{{ID: 4, Status: "completed", Outfits: []Outfit{{OutfitName: "old"}}}}
		if polls.Add(1) >= 2 {
			recs = append([]Recommendation{{
				ID:      5,
				Status:  "completed",
				Outfits: []Outfit{{OutfitName: "new"}},
			}}, recs...)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(recs)
	}))

	rec, err := c.WaitNewRecommendation(context.Background(), 4, fastWait())
	if err != nil {
		t.Fatalf("WaitNewRecommendation returned error: %v", err)
	}
	if rec == nil || rec.ID != 5 {
		t.Fatalf("rec = %#v, want id=5", rec)
	}
}

func TestClient_WaitCancelledContext(t *testing.T) {
	t.Parallel()

	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]UserImage{{ID: 1, ProcessingStatus: StatusPending}})
	}))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := c.WaitImagesProcessed(ctx, WaitOptions{Interval: 5 * time.Millisecond, Timeout: 10 * time.Second})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
