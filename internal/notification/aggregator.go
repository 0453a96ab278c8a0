// Package notification owns the price-drop notifications fetched for the
// current identity. The server produces them; this side only reads and
// partitions.
package notification

import (
	"context"
	"sync"

	"golang.org/x/exp/slices"

	"pricehawk/internal/api"
	"pricehawk/internal/misc"
	"pricehawk/internal/model"
)

type logger interface {
	Debugf(format string, v ...any)
	Errorf(format string, v ...any)
}

type Aggregator struct {
	api    *api.Client
	logger logger

	mu            sync.Mutex
	notifications []model.Notification
}

func NewAggregator(apiClient *api.Client, l logger) *Aggregator {
	return &Aggregator{
		api:    apiClient,
		logger: l,
	}
}

// Refresh fetches all notifications. Order is trusted from the server
// (newest first); no re-sort happens here.
func (a *Aggregator) Refresh(ctx context.Context) error {
	notifications, err := a.api.Notifications(ctx)
	if err != nil {
		return err
	}
	if notifications == nil {
		notifications = []model.Notification{}
	}
	a.mu.Lock()
	a.notifications = notifications
	a.mu.Unlock()
	a.logger.Debugf("Refresh: holding %d notification(s)", len(notifications))
	return nil
}

func (a *Aggregator) List() []model.Notification {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.notifications)
}

func (a *Aggregator) UnreadCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	count := 0
	for _, n := range a.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

// RecentActivity returns the first n notifications for summary displays.
func (a *Aggregator) RecentActivity(n int) []model.Notification {
	a.mu.Lock()
	defer a.mu.Unlock()
	if n < 0 {
		n = 0
	}
	return slices.Clone(a.notifications[:misc.Min(n, len(a.notifications))])
}

// SendTestEmail triggers a server-side test delivery; the notification
// collection is untouched either way.
func (a *Aggregator) SendTestEmail(ctx context.Context, email string) (string, error) {
	return a.api.SendTestEmail(ctx, email)
}
