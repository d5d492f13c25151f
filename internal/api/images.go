package api

import (
	"context"
	"fmt"
)

// UploadImage sends one user photo. imageType may be empty; the backend then
// files it as a generic user image.
func (c *Client) UploadImage(ctx context.Context, filePath string, imageType ImageType, progress ProgressFunc) (*UserImage, error) {
	fields := map[string]string{"image_type": string(imageType)}
	var image UserImage
	if err := c.uploadMultipart(ctx, "/api/images/upload", filePath, fields, progress, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// Images lists the user's uploaded photos.
func (c *Client) Images(ctx context.Context) ([]UserImage, error) {
	var images []UserImage
	if err := c.getJSON(ctx, "/api/images/", nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// Image fetches a single photo by id.
func (c *Client) Image(ctx context.Context, id int64) (*UserImage, error) {
	var image UserImage
	if err := c.getJSON(ctx, fmt.Sprintf("/api/images/%d", id), nil, &image); err != nil {
		return nil, err
	}
	return &image, nil
}

// DeleteImage removes a photo. A 404 means it was already gone.
func (c *Client) DeleteImage(ctx context.Context, id int64) error {
	return c.deleteResource(ctx, fmt.Sprintf("/api/images/%d", id))
}
