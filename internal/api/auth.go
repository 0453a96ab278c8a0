package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"pricehawk/internal/model"
)

// Login authenticates against the backend and returns the user together with
// the freshly minted bearer token. The token is not attached to the client;
// that is the session manager's decision.
func (c *Client) Login(ctx context.Context, email string, password string) (model.User, string, error) {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	type response struct {
		User        model.User `json:"user"`
		AccessToken string     `json:"access_token"`
	}

	req, traceID, err := c.newRequest(ctx, http.MethodPost, "/auth/login", request{Email: email, Password: password})
	if err != nil {
		return model.User{}, "", err
	}
	var resp response
	if err := c.doJSON(req, traceID, &resp); err != nil {
		return model.User{}, "", errors.Wrap(err, "login failed")
	}
	if resp.AccessToken == "" {
		return model.User{}, "", errors.New("login response contains no access token")
	}
	return resp.User, resp.AccessToken, nil
}

func (c *Client) Register(ctx context.Context, email string, password string) error {
	type request struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	req, traceID, err := c.newRequest(ctx, http.MethodPost, "/auth/register", request{Email: email, Password: password})
	if err != nil {
		return err
	}
	if err := c.doJSON(req, traceID, nil); err != nil {
		return errors.Wrap(err, "registration failed")
	}
	return nil
}

// Verify asks the backend whether the attached bearer token is still good.
// A 401 comes back as ErrUnauthorized; callers treat any error and
// valid=false the same way.
func (c *Client) Verify(ctx context.Context) (model.User, bool, error) {
	type response struct {
		Valid bool       `json:"valid"`
		User  model.User `json:"user"`
	}

	req, traceID, err := c.newRequest(ctx, http.MethodGet, "/auth/verify", nil)
	if err != nil {
		return model.User{}, false, err
	}
	var resp response
	if err := c.doJSON(req, traceID, &resp); err != nil {
		return model.User{}, false, err
	}
	return resp.User, resp.Valid, nil
}
