package api

import "context"

// Profile fetches the current user's profile. A missing profile is a 404
// *APIError; use IsNotFound to branch on it.
func (c *Client) Profile(ctx context.Context) (*Profile, error) {
	var profile Profile
	if err := c.getJSON(ctx, "/api/users/profile", nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// CreateProfile creates the profile. The backend rejects a second create with
// a 400; use UpdateProfile after that.
func (c *Client) CreateProfile(ctx context.Context, params ProfileParams) (*Profile, error) {
	var profile Profile
	if err := c.postJSON(ctx, "/api/users/profile", params, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial update; zero-valued fields are left alone.
func (c *Client) UpdateProfile(ctx context.Context, params ProfileParams) (*Profile, error) {
	var profile Profile
	if err := c.putJSON(ctx, "/api/users/profile", params, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveProfile creates the profile when none exists yet and updates it
// otherwise, so callers don't need to track which state they are in.
func (c *Client) SaveProfile(ctx context.Context, params ProfileParams) (*Profile, error) {
	if _, err := c.Profile(ctx); err != nil {
		if IsNotFound(err) {
			return c.CreateProfile(ctx, params)
		}
		return nil, err
	}
	return c.UpdateProfile(ctx, params)
}
