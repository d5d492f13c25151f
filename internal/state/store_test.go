package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/dripdirective/drip/internal/api"
)

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	data := &Data{
		Account: &api.UserInfo{ID: 7, Email: "user@example.com"},
		Images:  []api.UserImage{{ID: 1}, {ID: 2}},
		Wardrobe: []api.WardrobeItemWithImages{
			{WardrobeItem: api.WardrobeItem{ID: 3, ProcessingStatus: api.StatusProcessing}},
		},
		Recommendations: []api.Recommendation{{ID: 4, Status: "completed"}},
	}

	before := time.Now()
	s.Update(data, nil)

	snap := s.Snapshot()
	if snap.Account == nil || snap.Account.ID != 7 {
		t.Fatalf("snapshot account = %#v, want id=7", snap.Account)
	}
	if len(snap.Images) != 2 || snap.Images[0].ID != 1 {
		t.Fatalf("snapshot images = %#v, want 2 items", snap.Images)
	}
	if len(snap.Wardrobe) != 1 || len(snap.Recommendations) != 1 {
		t.Fatalf("snapshot wardrobe/recs = %d/%d, want 1/1", len(snap.Wardrobe), len(snap.Recommendations))
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Images[0].ID = 999
	snap2 := s.Snapshot()
	if snap2.Images[0].ID != 1 {
		t.Fatalf("Snapshot should clone images; got id %d want 1", snap2.Images[0].ID)
	}
}

func TestStore_UpdateErrorKeepsPreviousData(t *testing.T) {
	var s Store

	s.Update(&Data{
		Profile: &api.Profile{ID: 1, Gender: "female"},
		Images:  []api.UserImage{{ID: 1}},
	}, nil)
	prev := s.Snapshot()

	before := time.Now()
	origErr := errors.New("boom")
	s.Update(nil, origErr)

	snap := s.Snapshot()
	if snap.Profile == nil || snap.Profile.ID != prev.Profile.ID {
		t.Fatalf("profile changed on error: got %#v want %#v", snap.Profile, prev.Profile)
	}
	if len(snap.Images) != 1 || snap.Images[0].ID != 1 {
		t.Fatalf("images changed on error: got %#v want %#v", snap.Images, prev.Images)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	// Initially zero failures
	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}

	// First failure
	s.Update(nil, errors.New("fail 1"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 1 failure")
	}

	// Second failure - now offline
	s.Update(nil, errors.New("fail 2"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 2 {
		t.Fatalf("ConsecutiveFailures = %d, want 2", snap.ConsecutiveFailures)
	}
	if !snap.IsOffline() {
		t.Fatal("IsOffline() = false, want true with 2 failures")
	}

	// Success resets counter
	s.Update(&Data{}, nil)
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false after success")
	}
}

func TestSnapshot_ProcessingCounts(t *testing.T) {
	snap := Snapshot{
		Images: []api.UserImage{
			{ProcessingStatus: api.StatusPending},
			{ProcessingStatus: api.StatusCompleted},
			{ProcessingStatus: api.StatusProcessing},
		},
		Wardrobe: []api.WardrobeItemWithImages{
			{WardrobeItem: api.WardrobeItem{ProcessingStatus: api.StatusFailed}},
			{WardrobeItem: api.WardrobeItem{ProcessingStatus: api.StatusProcessing}},
		},
	}

	images, wardrobe := snap.Processing()
	if images != 2 {
		t.Fatalf("processing images = %d, want 2", images)
	}
	if wardrobe != 1 {
		t.Fatalf("processing wardrobe = %d, want 1", wardrobe)
	}
}
