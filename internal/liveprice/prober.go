// Package liveprice fetches a live price for one product on demand and diffs
// it against the cached price.
package liveprice

import (
	"context"

	"pricehawk/internal/api"
)

const (
	SourceRemote      = "remote"
	SourceUnavailable = "unavailable"
)

// Probe carries the live price when the remote check succeeded; a nil
// LivePrice tells the caller to keep showing the cached price.
type Probe struct {
	LivePrice   *float64
	CachedPrice float64
	Delta       float64
	Source      string
}

type logger interface {
	Debugf(format string, v ...any)
	Errorf(format string, v ...any)
}

type Prober struct {
	api    *api.Client
	logger logger
}

func NewProber(apiClient *api.Client, l logger) Prober {
	return Prober{
		api:    apiClient,
		logger: l,
	}
}

// Probe never fails; live-price checks are advisory.
func (p Prober) Probe(ctx context.Context, productURL string, cachedPrice float64) Probe {
	resp, err := p.api.RealtimePrice(ctx, productURL, cachedPrice)
	if err != nil || resp.Status != "success" {
		if err != nil {
			p.logger.Debugf("Probe: live price unavailable for url: %s, err: %v", productURL, err)
		} else {
			p.logger.Debugf("Probe: live price check returned status %q for url: %s", resp.Status, productURL)
		}
		return Probe{
			CachedPrice: cachedPrice,
			Source:      SourceUnavailable,
		}
	}
	live := resp.Price
	return Probe{
		LivePrice:   &live,
		CachedPrice: cachedPrice,
		Delta:       live - cachedPrice,
		Source:      SourceRemote,
	}
}
