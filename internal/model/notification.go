package model

import (
	"time"

	"pricehawk/internal/misc"
)

type Notification struct {
	ID          string    `json:"_id"`
	ProductName string    `json:"product_name"`
	OldPrice    float64   `json:"old_price"`
	NewPrice    float64   `json:"new_price"`
	TargetPrice float64   `json:"target_price"`
	Savings     float64   `json:"savings"`
	IsRead      bool      `json:"is_read"`
	UserEmail   string    `json:"user_email"`
	CreatedAt   time.Time `json:"created_at"`
}

// DropPercent is the size of the price drop relative to the old price,
// in percent rounded to one decimal.
func (n Notification) DropPercent() float64 {
	if n.OldPrice <= 0 {
		return 0
	}
	return misc.Round1((n.OldPrice - n.NewPrice) / n.OldPrice * 100)
}

func (n Notification) TargetReached() bool {
	return n.NewPrice <= n.TargetPrice
}
