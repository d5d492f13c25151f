package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// GenerateRecommendation starts outfit generation for a free-text style
// query. recommendationType is an optional hint such as "casual", "business"
// or "wedding". The backend requires at least one processed wardrobe item.
func (c *Client) GenerateRecommendation(ctx context.Context, query, recommendationType string) (*ProcessingResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("recommendation query is empty")
	}
	req := RecommendationRequest{Query: query, RecommendationType: recommendationType}
	var resp ProcessingResponse
	if err := c.postJSON(ctx, "/api/recommendations/generate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Recommendations lists recent recommendations, newest first. limit <= 0
// uses the backend default.
func (c *Client) Recommendations(ctx context.Context, limit int) ([]Recommendation, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": []string{strconv.Itoa(limit)}}
	}
	var recs []Recommendation
	if err := c.getJSON(ctx, "/api/recommendations/", query, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// Recommendation fetches one recommendation with its parsed outfits.
func (c *Client) Recommendation(ctx context.Context, id int64) (*Recommendation, error) {
	var rec Recommendation
	if err := c.getJSON(ctx, fmt.Sprintf("/api/recommendations/%d", id), nil, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// RecommendationOutfits fetches the detail view of a recommendation's
// outfits, with each referenced wardrobe item resolved to its images.
func (c *Client) RecommendationOutfits(ctx context.Context, id int64) (*OutfitDetails, error) {
	var details OutfitDetails
	if err := c.getJSON(ctx, fmt.Sprintf("/api/recommendations/%d/outfits", id), nil, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// GenerateTryOn renders the chosen outfit onto the user's processed photo.
// The outfit index is validated locally against the recommendation first so
// an off-by-one surfaces before a slow render request.
func (c *Client) GenerateTryOn(ctx context.Context, rec *Recommendation, outfitIndex int) (*TryOnResponse, error) {
	if rec == nil {
		return nil, fmt.Errorf("recommendation is nil")
	}
	if outfitIndex < 0 || outfitIndex >= len(rec.Outfits) {
		return nil, fmt.Errorf("outfit index %d out of range (recommendation has %d outfits)", outfitIndex, len(rec.Outfits))
	}
	var resp TryOnResponse
	path := fmt.Sprintf("/api/recommendations/%d/tryon", rec.ID)
	if err := c.postJSON(ctx, path, TryOnRequest{OutfitIndex: outfitIndex}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
