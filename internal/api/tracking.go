package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"pricehawk/internal/model"
)

// TrackRequest mirrors the track-product request body. CurrentPrice may be
// zero when the caller could not parse a price; TargetPrice is validated by
// the caller before it gets here.
type TrackRequest struct {
	Name         string  `json:"name"`
	CurrentPrice float64 `json:"current_price"`
	TargetPrice  float64 `json:"target_price"`
	UserEmail    string  `json:"user_email"`
	URL          string  `json:"url"`
	Image        string  `json:"image"`
	Platform     string  `json:"platform"`
}

func (c *Client) TrackedProducts(ctx context.Context) ([]model.TrackedProduct, error) {
	type response struct {
		Products []model.TrackedProduct `json:"products"`
	}

	req, traceID, err := c.newRequest(ctx, http.MethodGet, "/my-products", nil)
	if err != nil {
		return nil, err
	}
	var resp response
	if err := c.doJSON(req, traceID, &resp); err != nil {
		return nil, errors.Wrap(err, "error fetching tracked products")
	}
	return resp.Products, nil
}

func (c *Client) TrackProduct(ctx context.Context, tr TrackRequest) (string, error) {
	type response struct {
		Message string `json:"message"`
	}

	req, traceID, err := c.newRequest(ctx, http.MethodPost, "/track-product", tr)
	if err != nil {
		return "", err
	}
	var resp response
	if err := c.doJSON(req, traceID, &resp); err != nil {
		return "", errors.Wrapf(err, "error tracking product: %s", tr.Name)
	}
	return resp.Message, nil
}

func (c *Client) UntrackProduct(ctx context.Context, id string) error {
	req, traceID, err := c.newRequest(ctx, http.MethodDelete, "/untrack-product/"+id, nil)
	if err != nil {
		return err
	}
	if err := c.doJSON(req, traceID, nil); err != nil {
		return errors.Wrapf(err, "error untracking product with id: %s", id)
	}
	return nil
}

func (c *Client) UpdateTargetPrice(ctx context.Context, id string, targetPrice float64) error {
	type request struct {
		TargetPrice float64 `json:"target_price"`
	}

	req, traceID, err := c.newRequest(ctx, http.MethodPatch, "/update-target-price/"+id, request{TargetPrice: targetPrice})
	if err != nil {
		return err
	}
	if err := c.doJSON(req, traceID, nil); err != nil {
		return errors.Wrapf(err, "error updating target price for product with id: %s", id)
	}
	return nil
}
