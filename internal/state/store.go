package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/dripdirective/drip/internal/api"
)

// Data is the set of account resources one refresh fetches from the backend.
type Data struct {
	Account         *api.UserInfo
	Profile         *api.Profile
	Images          []api.UserImage
	Wardrobe        []api.WardrobeItemWithImages
	Recommendations []api.Recommendation
}

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	Account             *api.UserInfo
	Profile             *api.Profile
	Images              []api.UserImage
	Wardrobe            []api.WardrobeItemWithImages
	Recommendations     []api.Recommendation
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive poll failures
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Processing returns how many images and wardrobe items are still being
// analyzed. The UI uses this to decide whether to show activity in the header.
func (s Snapshot) Processing() (images, wardrobe int) {
	for _, img := range s.Images {
		if img.ProcessingStatus.InProgress() {
			images++
		}
	}
	for _, item := range s.Wardrobe {
		if item.ProcessingStatus.InProgress() {
			wardrobe++
		}
	}
	return images, wardrobe
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(data *Data, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	if data != nil {
		s.snapshot.Account = data.Account
		s.snapshot.Profile = data.Profile
		s.snapshot.Images = cloneSlice(data.Images)
		s.snapshot.Wardrobe = cloneSlice(data.Wardrobe)
		s.snapshot.Recommendations = cloneSlice(data.Recommendations)
	}
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Images = cloneSlice(s.snapshot.Images)
	snap.Wardrobe = cloneSlice(s.snapshot.Wardrobe)
	snap.Recommendations = cloneSlice(s.snapshot.Recommendations)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneSlice[T any](items []T) []T {
	if len(items) == 0 {
		return nil
	}
	dup := make([]T, len(items))
	copy(dup, items)
	return dup
}
