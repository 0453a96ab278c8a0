package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pricehawk/internal/model"
)

func TestDropPercent(t *testing.T) {
	n := model.Notification{OldPrice: 100, NewPrice: 75}
	assert.Equal(t, 25.0, n.DropPercent())

	n = model.Notification{OldPrice: 29.99, NewPrice: 24.99}
	assert.Equal(t, 16.7, n.DropPercent())

	n = model.Notification{OldPrice: 0, NewPrice: 10}
	assert.Equal(t, 0.0, n.DropPercent())

	n = model.Notification{OldPrice: -1, NewPrice: 10}
	assert.Equal(t, 0.0, n.DropPercent())
}

func TestTargetReached(t *testing.T) {
	assert.True(t, model.Notification{NewPrice: 80, TargetPrice: 90}.TargetReached())
	assert.True(t, model.Notification{NewPrice: 90, TargetPrice: 90}.TargetReached())
	assert.False(t, model.Notification{NewPrice: 95, TargetPrice: 90}.TargetReached())
}

func TestOriginalSavings(t *testing.T) {
	assert.Equal(t, 20.0, model.TrackedProduct{OriginalPrice: 100, CurrentPrice: 80}.OriginalSavings())
	assert.Equal(t, 0.0, model.TrackedProduct{OriginalPrice: 100, CurrentPrice: 100}.OriginalSavings())
	assert.Equal(t, 0.0, model.TrackedProduct{OriginalPrice: 100, CurrentPrice: 120}.OriginalSavings())
	assert.Equal(t, 0.0, model.TrackedProduct{CurrentPrice: 50}.OriginalSavings())
}
