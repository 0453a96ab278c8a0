// Package tracking owns the collection of products the current user tracks.
// Local state changes only after the server confirms the matching operation.
package tracking

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"pricehawk/internal/api"
	"pricehawk/internal/model"
)

var ErrInvalidPrice = errors.New("invalid price")

type logger interface {
	Debugf(format string, v ...any)
	Errorf(format string, v ...any)
}

type Store struct {
	api    *api.Client
	logger logger

	mu       sync.Mutex
	products []model.TrackedProduct
}

func NewStore(apiClient *api.Client, l logger) *Store {
	return &Store{
		api:    apiClient,
		logger: l,
	}
}

// Refresh fetches the tracked products for the current identity. A user with
// nothing tracked gets an empty collection, not an error.
func (s *Store) Refresh(ctx context.Context) error {
	products, err := s.api.TrackedProducts(ctx)
	if err != nil {
		return err
	}
	if products == nil {
		products = []model.TrackedProduct{}
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	s.logger.Debugf("Refresh: holding %d tracked product(s)", len(products))
	return nil
}

// List returns a copy of the current collection.
func (s *Store) List() []model.TrackedProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products)
}

// Track asks the server to persist a new tracked product and returns its
// confirmation message. The local collection is not touched; callers Refresh
// when they want the new entry reflected.
func (s *Store) Track(ctx context.Context, tr api.TrackRequest) (string, error) {
	return s.api.TrackProduct(ctx, tr)
}

// UpdateTargetPrice patches the server, then rewrites only the target price
// on the local copy so a re-render reflects the edit without a full fetch.
func (s *Store) UpdateTargetPrice(ctx context.Context, id string, targetPrice float64) error {
	if err := s.api.UpdateTargetPrice(ctx, id, targetPrice); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.IndexFunc(s.products, func(p model.TrackedProduct) bool { return p.ID == id }); i >= 0 {
		s.products[i].TargetPrice = targetPrice
	}
	return nil
}

// Untrack removes the entry server-side, then drops the local copy by id.
func (s *Store) Untrack(ctx context.Context, id string) error {
	if err := s.api.UntrackProduct(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := slices.IndexFunc(s.products, func(p model.TrackedProduct) bool { return p.ID == id }); i >= 0 {
		s.products = slices.Delete(s.products, i, i+1)
	}
	return nil
}

// ParsePrice validates user-entered price text. Non-numeric, NaN or negative
// input is a validation error for the caller to surface.
func ParsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v != v || v < 0 {
		return 0, errors.Wrapf(ErrInvalidPrice, "cannot use %q as a price", s)
	}
	return v, nil
}

// ParsePriceOrZero coerces like the track form does: anything that does not
// parse becomes 0.
func ParsePriceOrZero(s string) float64 {
	v, err := ParsePrice(s)
	if err != nil {
		return 0
	}
	return v
}
