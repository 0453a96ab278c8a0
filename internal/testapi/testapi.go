// Package testapi is an in-process PriceHawk backend for tests: the same
// wire contract as the real service, with in-memory state and knobs for
// failure modes.
package testapi

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/mux"
	"github.com/lestrrat-go/jwx/v2/jwk"

	"pricehawk/internal/api"
	"pricehawk/internal/model"
)

type mode int

const (
	modeSuccess mode = iota
	// 200 with a non-success status in the body.
	modeSoftFail
	// plain 500
	modeHardFail
)

type user struct {
	name     string
	password []byte
}

type Server struct {
	key      jwk.Key
	requests int64

	mu             sync.Mutex
	users          map[string]user
	products       []model.TrackedProduct
	notifications  []model.Notification
	searchResults  []api.SearchResult
	searchRecs     []string
	emailEnabled   bool
	predictMode    mode
	predictResp    predictBody
	liveMode       mode
	livePrice      float64
}

type predictBody struct {
	Trend          string
	PredictedPrice float64
	PriceChange    float64
	Recommendation string
}

func New() *Server {
	key, err := jwk.FromRaw([]byte("testapi-auth-secret-key"))
	if err != nil {
		panic(err)
	}
	return &Server{
		key:   key,
		users: map[string]user{},
	}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()

	a := r.PathPrefix("/api").Subrouter()
	a.Use(s.countMw)

	a.HandleFunc("/auth/register", s.authRegister()).Methods(http.MethodPost)
	a.HandleFunc("/auth/login", s.authLogin()).Methods(http.MethodPost)
	a.HandleFunc("/auth/verify", s.authVerify()).Methods(http.MethodGet)

	a.HandleFunc("/search", s.search()).Methods(http.MethodPost)
	a.HandleFunc("/predict-price", s.predictPrice()).Methods(http.MethodPost)
	a.HandleFunc("/realtime-price", s.realtimePrice()).Methods(http.MethodPost)

	gated := a.NewRoute().Subrouter()
	gated.Use(s.authMw)
	gated.HandleFunc("/my-products", s.myProducts()).Methods(http.MethodGet)
	gated.HandleFunc("/track-product", s.trackProduct()).Methods(http.MethodPost)
	gated.HandleFunc("/untrack-product/{productID}", s.untrackProduct()).Methods(http.MethodDelete)
	gated.HandleFunc("/update-target-price/{productID}", s.updateTargetPrice()).Methods(http.MethodPatch)
	gated.HandleFunc("/my-notifications", s.myNotifications()).Methods(http.MethodGet)
	gated.HandleFunc("/send-test-email", s.sendTestEmail()).Methods(http.MethodPost)

	return r
}

func (s *Server) countMw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&s.requests, 1)
		next.ServeHTTP(w, r)
	})
}

// RequestCount is the number of API requests seen since construction.
func (s *Server) RequestCount() int {
	return int(atomic.LoadInt64(&s.requests))
}

func (s *Server) writeJSON(w http.ResponseWriter, response any, statusCode int) {
	resp, err := json.Marshal(response)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(resp)
}

func (s *Server) writeError(w http.ResponseWriter, message string, statusCode int) {
	s.writeJSON(w, map[string]string{"error": message}, statusCode)
}

func (s *Server) SeedProducts(products ...model.TrackedProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, products...)
}

func (s *Server) SeedNotifications(notifications ...model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, notifications...)
}

func (s *Server) SeedSearch(results []api.SearchResult, recommendations []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchResults = results
	s.searchRecs = recommendations
}

func (s *Server) EnableEmail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emailEnabled = true
}

func (s *Server) SetPredict(trend string, predictedPrice float64, priceChange float64, recommendation string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.predictMode = modeSuccess
	s.predictResp = predictBody{
		Trend:          trend,
		PredictedPrice: predictedPrice,
		PriceChange:    priceChange,
		Recommendation: recommendation,
	}
}

func (s *Server) SetPredictSoftFail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.predictMode = modeSoftFail
}

func (s *Server) SetPredictHardFail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.predictMode = modeHardFail
}

func (s *Server) SetLivePrice(price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveMode = modeSuccess
	s.livePrice = price
}

func (s *Server) SetLiveSoftFail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveMode = modeSoftFail
}

func (s *Server) SetLiveHardFail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liveMode = modeHardFail
}

// Products returns a snapshot of the server-side product collection.
func (s *Server) Products() []model.TrackedProduct {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.TrackedProduct, len(s.products))
	copy(out, s.products)
	return out
}
