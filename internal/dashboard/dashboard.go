// Package dashboard joins the tracking store and the notification aggregator
// into the overview the dashboard view renders.
package dashboard

import (
	"context"

	"github.com/pkg/errors"

	"pricehawk/internal/model"
	"pricehawk/internal/notification"
	"pricehawk/internal/stats"
	"pricehawk/internal/tracking"
)

// The original dashboard shows the five newest notifications.
const recentActivityLimit = 5

type logger interface {
	Debugf(format string, v ...any)
	Errorf(format string, v ...any)
}

type Service struct {
	Tracking      *tracking.Store
	Notifications *notification.Aggregator
	Logger        logger
}

type Overview struct {
	Stats          stats.DashboardStats
	RecentActivity []model.Notification
}

// Overview refreshes both sources concurrently, joins, then computes the
// derived stats. Ordering between the two fetches is irrelevant; the
// calculator is pure and order-independent.
func (s Service) Overview(ctx context.Context) (Overview, error) {
	errc := make(chan error, 2)
	go func() { errc <- s.Tracking.Refresh(ctx) }()
	go func() { errc <- s.Notifications.Refresh(ctx) }()

	var firstErr error
	for i := 0; i < 2; i++ {
		if err := <-errc; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return Overview{}, errors.Wrap(firstErr, "error fetching dashboard data")
	}

	return Overview{
		Stats:          stats.Compute(s.Tracking.List(), s.Notifications.List()),
		RecentActivity: s.Notifications.RecentActivity(recentActivityLimit),
	}, nil
}
