package api

import "context"

// Signup registers a new account and returns its session token.
func (c *Client) Signup(ctx context.Context, email, password string) (*Token, error) {
	var token Token
	err := c.postJSONNoAuth(ctx, "/api/auth/signup", Credentials{Email: email, Password: password}, &token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Login exchanges credentials for a session token. Invalid credentials come
// back as a 401 *APIError; an inactive account as a 400.
func (c *Client) Login(ctx context.Context, email, password string) (*Token, error) {
	var token Token
	err := c.postJSONNoAuth(ctx, "/api/auth/login", Credentials{Email: email, Password: password}, &token)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Me returns the account behind the current session token.
func (c *Client) Me(ctx context.Context) (*UserInfo, error) {
	var info UserInfo
	if err := c.getJSON(ctx, "/api/auth/me", nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
