package model

import "time"

type TrackedProduct struct {
	ID                string    `json:"_id"`
	ProductName       string    `json:"product_name"`
	ProductURL        string    `json:"product_url"`
	ImageURL          string    `json:"image_url"`
	Platform          string    `json:"platform"`
	CurrentPrice      float64   `json:"current_price"`
	TargetPrice       float64   `json:"target_price"`
	OriginalPrice     float64   `json:"original_price"`
	UserEmail         string    `json:"user_email"`
	NotificationsSent int       `json:"notifications_sent"`
	CreatedAt         time.Time `json:"created_at"`
}

// OriginalSavings is the drop from the price the product was first seen at,
// zero when the price has not gone down.
func (p TrackedProduct) OriginalSavings() float64 {
	if p.OriginalPrice > p.CurrentPrice {
		return p.OriginalPrice - p.CurrentPrice
	}
	return 0
}
