package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

type PredictResponse struct {
	Status         string  `json:"status"`
	Trend          string  `json:"trend"`
	CurrentPrice   float64 `json:"current_price"`
	PredictedPrice float64 `json:"predicted_price"`
	PriceChange    float64 `json:"price_change"`
	Recommendation string  `json:"recommendation"`
}

func (c *Client) PredictPrice(ctx context.Context, productName string, currentPrice float64, daysAhead int) (PredictResponse, error) {
	type request struct {
		ProductName  string  `json:"product_name"`
		CurrentPrice float64 `json:"current_price"`
		DaysAhead    int     `json:"days_ahead"`
	}

	req, traceID, err := c.newRequest(ctx, http.MethodPost, "/predict-price", request{
		ProductName:  productName,
		CurrentPrice: currentPrice,
		DaysAhead:    daysAhead,
	})
	if err != nil {
		return PredictResponse{}, err
	}
	var resp PredictResponse
	if err := c.doJSON(req, traceID, &resp); err != nil {
		return PredictResponse{}, errors.Wrapf(err, "error predicting price for: %s", productName)
	}
	return resp, nil
}

type RealtimeResponse struct {
	Status   string  `json:"status"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

func (c *Client) RealtimePrice(ctx context.Context, productURL string, currentPrice float64) (RealtimeResponse, error) {
	type request struct {
		URL          string  `json:"url"`
		CurrentPrice float64 `json:"current_price"`
	}

	req, traceID, err := c.newRequest(ctx, http.MethodPost, "/realtime-price", request{
		URL:          productURL,
		CurrentPrice: currentPrice,
	})
	if err != nil {
		return RealtimeResponse{}, err
	}
	var resp RealtimeResponse
	if err := c.doJSON(req, traceID, &resp); err != nil {
		return RealtimeResponse{}, errors.Wrapf(err, "error fetching realtime price from url: %s", productURL)
	}
	return resp, nil
}
