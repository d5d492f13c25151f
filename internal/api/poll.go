package api

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrWaitTimeout is returned when a background job did not reach a terminal
// state before the wait ceiling. The last observed snapshot is returned
// alongside it so callers can still render partial state.
var ErrWaitTimeout = errors.New("processing wait timed out")

// WaitOptions tune the fixed-interval polling loops.
type WaitOptions struct {
	Interval time.Duration // time between status checks
	Timeout  time.Duration // give-up ceiling
}

const (
	defaultWaitInterval = 2 * time.Second
	defaultWaitTimeout  = 60 * time.Second
)

func (o WaitOptions) withDefaults() WaitOptions {
	if o.Interval <= 0 {
		o.Interval = defaultWaitInterval
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultWaitTimeout
	}
	return o
}

// WaitImagesProcessed polls the user's photos until every one reaches a
// terminal status. Failed photos do not abort the wait; they are reported in
// the returned slice.
func (c *Client) WaitImagesProcessed(ctx context.Context, opts WaitOptions) ([]UserImage, error) {
	var last []UserImage
	err := c.waitUntil(ctx, opts, func(ctx context.Context) (bool, error) {
		images, err := c.Images(ctx)
		if err != nil {
			return false, err
		}
		last = images
		return allImagesTerminal(images), nil
	})
	return last, err
}

// WaitWardrobeProcessed polls wardrobe items until every one reaches a
// terminal status.
func (c *Client) WaitWardrobeProcessed(ctx context.Context, opts WaitOptions) ([]WardrobeItemWithImages, error) {
	var last []WardrobeItemWithImages
	err := c.waitUntil(ctx, opts, func(ctx context.Context) (bool, error) {
		items, err := c.WardrobeItems(ctx)
		if err != nil {
			return false, err
		}
		last = items
		return allItemsTerminal(items), nil
	})
	return last, err
}

// WaitRecommendation polls one recommendation until the backend has filled
// in its outfits.
func (c *Client) WaitRecommendation(ctx context.Context, id int64, opts WaitOptions) (*Recommendation, error) {
	var last *Recommendation
	err := c.waitUntil(ctx, opts, func(ctx context.Context) (bool, error) {
		rec, err := c.Recommendation(ctx, id)
		if err != nil {
			return false, err
		}
		last = rec
		return rec.Completed(), nil
	})
	return last, err
}

// WaitNewRecommendation polls the recommendation list until a completed
// recommendation newer than sinceID appears. The generate endpoint does not
// return an id, so this is how a caller finds the result of its own trigger.
func (c *Client) WaitNewRecommendation(ctx context.Context, sinceID int64, opts WaitOptions) (*Recommendation, error) {
	var last *Recommendation
	err := c.waitUntil(ctx, opts, func(ctx context.Context) (bool, error) {
		recs, err := c.Recommendations(ctx, 5)
		if err != nil {
			return false, err
		}
		for i := range recs {
			if recs[i].ID > sinceID {
				last = &recs[i]
				if recs[i].Completed() {
					return true, nil
				}
			}
		}
		return false, nil
	})
	return last, err
}

// waitUntil runs check at a fixed cadence until it reports done, the timeout
// ceiling passes, or ctx is cancelled. Transient check errors keep the loop
// going; only the deadline or cancellation end it early.
func (c *Client) waitUntil(ctx context.Context, opts WaitOptions, check func(context.Context) (bool, error)) error {
	opts = opts.withDefaults()
	deadline := time.Now().Add(opts.Timeout)

	var lastErr error
	for {
		done, err := check(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			lastErr = err
		} else if done {
			return nil
		}

		if time.Now().After(deadline) {
			if lastErr != nil {
				return fmt.Errorf("%w (last error: %v)", ErrWaitTimeout, lastErr)
			}
			return ErrWaitTimeout
		}
		if err := sleep(ctx, opts.Interval); err != nil {
			return err
		}
	}
}

func allImagesTerminal(images []UserImage) bool {
	if len(images) == 0 {
		return false
	}
	for _, img := range images {
		if !img.ProcessingStatus.Terminal() {
			return false
		}
	}
	return true
}

func allItemsTerminal(items []WardrobeItemWithImages) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if !item.ProcessingStatus.Terminal() {
			return false
		}
	}
	return true
}
