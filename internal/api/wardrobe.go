package api

import (
	"context"
	"fmt"
)

// UploadWardrobeImage sends one wardrobe photo. The backend may detect
// several garments in it and attach cropped variants to the created item.
func (c *Client) UploadWardrobeImage(ctx context.Context, filePath string, progress ProgressFunc) (*WardrobeItem, error) {
	var item WardrobeItem
	if err := c.uploadMultipart(ctx, "/api/wardrobe/upload", filePath, nil, progress, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// WardrobeItems lists all wardrobe items with their images.
func (c *Client) WardrobeItems(ctx context.Context) ([]WardrobeItemWithImages, error) {
	var items []WardrobeItemWithImages
	if err := c.getJSON(ctx, "/api/wardrobe/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// WardrobeItemByID fetches one wardrobe item with its images.
func (c *Client) WardrobeItemByID(ctx context.Context, id int64) (*WardrobeItemWithImages, error) {
	var item WardrobeItemWithImages
	if err := c.getJSON(ctx, fmt.Sprintf("/api/wardrobe/items/%d", id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteWardrobeItem removes an item and its images.
func (c *Client) DeleteWardrobeItem(ctx context.Context, id int64) error {
	return c.deleteResource(ctx, fmt.Sprintf("/api/wardrobe/items/%d", id))
}
