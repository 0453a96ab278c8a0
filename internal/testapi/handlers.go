package testapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"pricehawk/internal/api"
	"pricehawk/internal/model"
)

func (s *Server) myProducts() http.HandlerFunc {
	type response struct {
		Products []model.TrackedProduct `json:"products"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		products := make([]model.TrackedProduct, len(s.products))
		copy(products, s.products)
		s.mu.Unlock()
		s.writeJSON(w, response{Products: products}, http.StatusOK)
	}
}

func (s *Server) trackProduct() http.HandlerFunc {
	type response struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := api.TrackRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		platform := req.Platform
		if platform == "" {
			platform = "Unknown"
		}
		p := model.TrackedProduct{
			ID:            uuid.NewString(),
			ProductName:   req.Name,
			ProductURL:    req.URL,
			ImageURL:      req.Image,
			Platform:      platform,
			CurrentPrice:  req.CurrentPrice,
			TargetPrice:   req.TargetPrice,
			OriginalPrice: req.CurrentPrice,
			UserEmail:     req.UserEmail,
			CreatedAt:     time.Now().UTC(),
		}
		s.mu.Lock()
		s.products = append(s.products, p)
		s.mu.Unlock()
		s.writeJSON(w, response{
			Status:  "success",
			Message: fmt.Sprintf("Now tracking %s for $%.2f!", p.ProductName, p.TargetPrice),
		}, http.StatusOK)
	}
}

func (s *Server) untrackProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["productID"]
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, p := range s.products {
			if p.ID == id {
				s.products = append(s.products[:i], s.products[i+1:]...)
				s.writeJSON(w, map[string]string{"message": "Product untracked"}, http.StatusOK)
				return
			}
		}
		s.writeError(w, "Product not found", http.StatusNotFound)
	}
}

func (s *Server) updateTargetPrice() http.HandlerFunc {
	type request struct {
		TargetPrice float64 `json:"target_price"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["productID"]
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		for i := range s.products {
			if s.products[i].ID == id {
				s.products[i].TargetPrice = req.TargetPrice
				s.writeJSON(w, map[string]string{"message": "Target price updated"}, http.StatusOK)
				return
			}
		}
		s.writeError(w, "Product not found", http.StatusNotFound)
	}
}

func (s *Server) myNotifications() http.HandlerFunc {
	type response struct {
		Notifications []model.Notification `json:"notifications"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		notifications := make([]model.Notification, len(s.notifications))
		copy(notifications, s.notifications)
		s.mu.Unlock()
		s.writeJSON(w, response{Notifications: notifications}, http.StatusOK)
	}
}

func (s *Server) sendTestEmail() http.HandlerFunc {
	type request struct {
		Email string `json:"email"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		enabled := s.emailEnabled
		s.mu.Unlock()
		if !enabled {
			s.writeJSON(w, map[string]string{
				"status":  "error",
				"message": "Email not configured",
			}, http.StatusInternalServerError)
			return
		}
		s.writeJSON(w, map[string]string{
			"status":  "success",
			"message": fmt.Sprintf("Test email sent successfully to %s!", req.Email),
		}, http.StatusOK)
	}
}

func (s *Server) search() http.HandlerFunc {
	type response struct {
		Results         []api.SearchResult `json:"results"`
		Recommendations []string           `json:"recommendations"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		resp := response{Results: s.searchResults, Recommendations: s.searchRecs}
		s.mu.Unlock()
		s.writeJSON(w, resp, http.StatusOK)
	}
}

func (s *Server) predictPrice() http.HandlerFunc {
	type request struct {
		ProductName  string  `json:"product_name"`
		CurrentPrice float64 `json:"current_price"`
		DaysAhead    int     `json:"days_ahead"`
	}
	type response struct {
		Status         string  `json:"status"`
		Trend          string  `json:"trend"`
		CurrentPrice   float64 `json:"current_price"`
		PredictedPrice float64 `json:"predicted_price"`
		PriceChange    float64 `json:"price_change"`
		Recommendation string  `json:"recommendation"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		m, p := s.predictMode, s.predictResp
		s.mu.Unlock()
		switch m {
		case modeHardFail:
			s.writeError(w, "prediction service unavailable", http.StatusInternalServerError)
		case modeSoftFail:
			s.writeJSON(w, response{Status: "error"}, http.StatusOK)
		default:
			s.writeJSON(w, response{
				Status:         "success",
				Trend:          p.Trend,
				CurrentPrice:   req.CurrentPrice,
				PredictedPrice: p.PredictedPrice,
				PriceChange:    p.PriceChange,
				Recommendation: p.Recommendation,
			}, http.StatusOK)
		}
	}
}

func (s *Server) realtimePrice() http.HandlerFunc {
	type request struct {
		URL          string  `json:"url"`
		CurrentPrice float64 `json:"current_price"`
	}
	type response struct {
		Status   string  `json:"status"`
		Price    float64 `json:"price"`
		Currency string  `json:"currency"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		req := request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.mu.Lock()
		m, price := s.liveMode, s.livePrice
		s.mu.Unlock()
		switch m {
		case modeHardFail:
			s.writeError(w, "live price service unavailable", http.StatusInternalServerError)
		case modeSoftFail:
			s.writeJSON(w, response{Status: "error"}, http.StatusOK)
		default:
			s.writeJSON(w, response{Status: "success", Price: price, Currency: "$"}, http.StatusOK)
		}
	}
}
