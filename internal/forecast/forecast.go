// Package forecast estimates a short-horizon price trend. The remote
// predictor is advisory: when it is down or unhappy, a bounded random walk
// stands in so the tracking workflow is never blocked.
package forecast

import (
	"context"
	"math/rand"

	"pricehawk/internal/api"
	"pricehawk/internal/misc"
)

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"

	SourceRemote   = "remote"
	SourceFallback = "fallback"

	recommendationRise = "Buy now - price expected to rise"
	recommendationDrop = "Wait to buy - price expected to drop"
)

type Result struct {
	Trend          string
	CurrentPrice   float64
	PredictedPrice float64
	ChangePercent  float64
	Recommendation string
	Source         string
}

type logger interface {
	Debugf(format string, v ...any)
	Errorf(format string, v ...any)
}

type Estimator struct {
	api    *api.Client
	logger logger

	// randFloat is swappable so tests can pin the fallback walk.
	randFloat func() float64
}

func NewEstimator(apiClient *api.Client, l logger) *Estimator {
	return &Estimator{
		api:       apiClient,
		logger:    l,
		randFloat: rand.Float64,
	}
}

// Forecast never fails: a non-success answer or any transport error drops
// into the simulated fallback, the terminal error-absorption path for this
// operation.
func (e *Estimator) Forecast(ctx context.Context, productName string, currentPrice float64, daysAhead int) Result {
	resp, err := e.api.PredictPrice(ctx, productName, currentPrice, daysAhead)
	if err == nil && resp.Status == "success" {
		return Result{
			Trend:          resp.Trend,
			CurrentPrice:   currentPrice,
			PredictedPrice: resp.PredictedPrice,
			ChangePercent:  resp.PriceChange,
			Recommendation: resp.Recommendation,
			Source:         SourceRemote,
		}
	}
	if err != nil {
		e.logger.Debugf("Forecast: predictor unavailable for %s, using fallback, err: %v", productName, err)
	} else {
		e.logger.Debugf("Forecast: predictor returned status %q for %s, using fallback", resp.Status, productName)
	}
	return e.fallback(currentPrice)
}

// fallback draws a uniform variation in [-5%, +5%] of the current price.
func (e *Estimator) fallback(currentPrice float64) Result {
	variation := (e.randFloat() - 0.5) * 0.1
	r := Result{
		Trend:          TrendDecreasing,
		CurrentPrice:   currentPrice,
		PredictedPrice: currentPrice * (1 + variation),
		ChangePercent:  misc.Round1(variation * 100),
		Recommendation: recommendationDrop,
		Source:         SourceFallback,
	}
	if variation > 0 {
		r.Trend = TrendIncreasing
		r.Recommendation = recommendationRise
	}
	return r
}
