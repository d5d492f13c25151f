package app

import (
	"context"
	"log"
	"time"

	"github.com/dripdirective/drip/internal/api"
	"github.com/dripdirective/drip/internal/state"
)

const (
	defaultPollInterval = 3 * time.Second
	maxBackoff          = 30 * time.Second
	recommendationLimit = 20
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while the API stays unreachable. It returns
// immediately.
func StartPoller(ctx context.Context, store *state.Store, client *api.Client, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		for {
			refresh(ctx, store, client)

			delay := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			select {
			case <-ctx.Done():
				return
			case <-time.After(delay):
			}
		}
	}()
}

// calculateBackoff doubles the poll interval per consecutive failure, capped
// at maxBackoff, so a down backend is not hammered at full cadence.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	delay := base
	for i := 0; i < failures; i++ {
		delay *= 2
		if delay >= maxBackoff {
			return maxBackoff
		}
	}
	return delay
}

func refresh(ctx context.Context, store *state.Store, client *api.Client) {
	account, err := client.Me(ctx)
	if err != nil {
		store.Update(nil, err)
		log.Printf("account poll failed: %v", err)
		return
	}

	profile, err := client.Profile(ctx)
	if err != nil && !api.IsNotFound(err) {
		store.Update(nil, err)
		log.Printf("profile poll failed: %v", err)
		return
	}

	images, err := client.Images(ctx)
	if err != nil {
		store.Update(nil, err)
		log.Printf("images poll failed: %v", err)
		return
	}

	wardrobe, err := client.WardrobeItems(ctx)
	if err != nil {
		store.Update(nil, err)
		log.Printf("wardrobe poll failed: %v", err)
		return
	}

	recs, err := client.Recommendations(ctx, recommendationLimit)
	if err != nil {
		store.Update(nil, err)
		log.Printf("recommendations poll failed: %v", err)
		return
	}

	store.Update(&state.Data{
		Account:         account,
		Profile:         profile,
		Images:          images,
		Wardrobe:        wardrobe,
		Recommendations: recs,
	}, nil)
}
