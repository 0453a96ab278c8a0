// Package stats derives the dashboard counters from already-fetched
// collections. Everything here is pure so it can run without network state.
package stats

import (
	"pricehawk/internal/misc"
	"pricehawk/internal/model"
)

type DashboardStats struct {
	TrackedProducts     int
	UnreadNotifications int
	PriceDrops          int
	TotalSavings        float64
}

// Compute is deterministic and order-independent. PriceDrops counts products
// currently below target; TotalSavings sums savings across all notifications,
// read or not, rounded to cents. The two are deliberately independent: drops
// come from live tracked prices, savings from the notification history.
func Compute(products []model.TrackedProduct, notifications []model.Notification) DashboardStats {
	s := DashboardStats{
		TrackedProducts: len(products),
	}
	for _, p := range products {
		if p.CurrentPrice < p.TargetPrice {
			s.PriceDrops++
		}
	}
	var savings float64
	for _, n := range notifications {
		if !n.IsRead {
			s.UnreadNotifications++
		}
		savings += n.Savings
	}
	s.TotalSavings = misc.Round2(savings)
	return s
}
