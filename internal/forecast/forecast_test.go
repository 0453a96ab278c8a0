package forecast

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pricehawk/internal/api"
	pkglogger "pricehawk/internal/logger"
	"pricehawk/internal/testapi"
)

func newTestEstimator(t *testing.T, backend *testapi.Server) *Estimator {
	t.Helper()
	srv := httptest.NewServer(backend.Router())
	t.Cleanup(srv.Close)

	l := pkglogger.NewLogger(pkglogger.LevelOff, io.Discard)
	return NewEstimator(api.NewClient(srv.Client(), srv.URL+"/api", l), l)
}

func TestForecastRemote(t *testing.T) {
	backend := testapi.New()
	backend.SetPredict("decreasing", 88.5, -6.4, "Wait to buy - price expected to drop")
	e := newTestEstimator(t, backend)

	r := e.Forecast(context.Background(), "Headphones", 94.5, 7)
	assert.Equal(t, SourceRemote, r.Source)
	assert.Equal(t, "decreasing", r.Trend)
	assert.Equal(t, 94.5, r.CurrentPrice)
	assert.Equal(t, 88.5, r.PredictedPrice)
	assert.Equal(t, -6.4, r.ChangePercent)
	assert.Equal(t, "Wait to buy - price expected to drop", r.Recommendation)
}

func TestForecastFallbackOnSoftFail(t *testing.T) {
	backend := testapi.New()
	backend.SetPredictSoftFail()
	e := newTestEstimator(t, backend)
	e.randFloat = func() float64 { return 0.9 }

	r := e.Forecast(context.Background(), "Headphones", 100, 7)
	assert.Equal(t, SourceFallback, r.Source)
	assert.Equal(t, TrendIncreasing, r.Trend)
	assert.InDelta(t, 104, r.PredictedPrice, 1e-9)
	assert.Equal(t, 4.0, r.ChangePercent)
	assert.Equal(t, "Buy now - price expected to rise", r.Recommendation)
}

func TestForecastFallbackOnHardFail(t *testing.T) {
	backend := testapi.New()
	backend.SetPredictHardFail()
	e := newTestEstimator(t, backend)
	e.randFloat = func() float64 { return 0.1 }

	r := e.Forecast(context.Background(), "Headphones", 100, 7)
	assert.Equal(t, SourceFallback, r.Source)
	assert.Equal(t, TrendDecreasing, r.Trend)
	assert.InDelta(t, 96, r.PredictedPrice, 1e-9)
	assert.Equal(t, -4.0, r.ChangePercent)
	assert.Equal(t, "Wait to buy - price expected to drop", r.Recommendation)
}

func TestForecastFallbackOnUnreachableBackend(t *testing.T) {
	l := pkglogger.NewLogger(pkglogger.LevelOff, io.Discard)
	e := NewEstimator(api.NewClient(&http.Client{Timeout: time.Second}, "http://127.0.0.1:1/api", l), l)
	e.randFloat = func() float64 { return 0.5 }

	r := e.Forecast(context.Background(), "Headphones", 100, 7)
	assert.Equal(t, SourceFallback, r.Source)
	assert.Equal(t, 100.0, r.CurrentPrice)
}

func TestFallbackBounds(t *testing.T) {
	l := pkglogger.NewLogger(pkglogger.LevelOff, io.Discard)
	e := NewEstimator(nil, l)

	const current = 200.0
	for _, draw := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		e.randFloat = func() float64 { return draw }
		r := e.fallback(current)

		require.GreaterOrEqual(t, r.PredictedPrice, current*0.95, "draw: %v", draw)
		require.LessOrEqual(t, r.PredictedPrice, current*1.05, "draw: %v", draw)
		assert.Equal(t, current, r.CurrentPrice)
		assert.Equal(t, SourceFallback, r.Source)

		if r.PredictedPrice > current {
			assert.Equal(t, TrendIncreasing, r.Trend, "draw: %v", draw)
			assert.Equal(t, recommendationRise, r.Recommendation, "draw: %v", draw)
		} else {
			assert.Equal(t, TrendDecreasing, r.Trend, "draw: %v", draw)
			assert.Equal(t, recommendationDrop, r.Recommendation, "draw: %v", draw)
		}
	}
}
