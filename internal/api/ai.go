package api

import (
	"context"
	"fmt"
)

// ProcessUserImages asks the backend to analyze all pending user photos.
// The work happens in a background job; poll with WaitImagesProcessed.
// A 400 means nothing is pending.
func (c *Client) ProcessUserImages(ctx context.Context) (*ProcessingResponse, error) {
	var resp ProcessingResponse
	if err := c.postJSON(ctx, "/api/ai/process-user-images", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ProcessWardrobeItem triggers analysis for a single wardrobe item. The
// backend rejects items that are already mid-processing with a 400.
func (c *Client) ProcessWardrobeItem(ctx context.Context, id int64) (*ProcessingResponse, error) {
	var resp ProcessingResponse
	if err := c.postJSON(ctx, fmt.Sprintf("/api/ai/process-wardrobe/%d", id), struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ProcessAllWardrobe triggers analysis for every pending wardrobe item.
func (c *Client) ProcessAllWardrobe(ctx context.Context) (*ProcessingResponse, error) {
	var resp ProcessingResponse
	if err := c.postJSON(ctx, "/api/ai/process-all-wardrobe", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
