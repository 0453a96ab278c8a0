package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"pricehawk/internal/model"
)

func (c *Client) Notifications(ctx context.Context) ([]model.Notification, error) {
	type response struct {
		Notifications []model.Notification `json:"notifications"`
	}

	req, traceID, err := c.newRequest(ctx, http.MethodGet, "/my-notifications", nil)
	if err != nil {
		return nil, err
	}
	var resp response
	if err := c.doJSON(req, traceID, &resp); err != nil {
		return nil, errors.Wrap(err, "error fetching notifications")
	}
	return resp.Notifications, nil
}

// SendTestEmail triggers a test delivery server-side and returns the server's
// confirmation text.
func (c *Client) SendTestEmail(ctx context.Context, email string) (string, error) {
	type request struct {
		Email string `json:"email"`
	}
	type response struct {
		Message string `json:"message"`
	}

	req, traceID, err := c.newRequest(ctx, http.MethodPost, "/send-test-email", request{Email: email})
	if err != nil {
		return "", err
	}
	var resp response
	if err := c.doJSON(req, traceID, &resp); err != nil {
		return "", errors.Wrapf(err, "error sending test email to: %s", email)
	}
	return resp.Message, nil
}
