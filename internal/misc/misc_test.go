package misc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pricehawk/internal/misc"
)

func TestMinMax(t *testing.T) {
	assert.Equal(t, 3, misc.Min(3, 7))
	assert.Equal(t, 7, misc.Max(3, 7))
	assert.Equal(t, 1.5, misc.Min(2.5, 1.5))
	assert.Equal(t, "b", misc.Max("a", "b"))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.3, misc.Round2(0.1+0.2))
	assert.Equal(t, 16.05, misc.Round2(16.049999))
	assert.Equal(t, 16.7, misc.Round1(16.672))
	assert.Equal(t, -4.0, misc.Round1(-4.04))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$10.00", misc.FormatMoney(10))
	assert.Equal(t, "$0.50", misc.FormatMoney(0.5))
	assert.Equal(t, "$1234.57", misc.FormatMoney(1234.567))
}

func TestStringLimit(t *testing.T) {
	assert.Equal(t, "", misc.StringLimit("hello", -1))
	assert.Equal(t, "he", misc.StringLimit("hello", 2))
	assert.Equal(t, "hello", misc.StringLimit("hello", 5))
	assert.Equal(t, "hello", misc.StringLimit("hello", 10))
	assert.Equal(t, "hel...", misc.StringLimit("hello world", 6))
}
