package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderProgress(t *testing.T) {
	placed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	o := &Order{PlacedAt: placed}

	assert.Equal(t, 1, o.Progress(placed))
	assert.Equal(t, 1, o.Progress(placed.Add(-time.Minute)))
	assert.Equal(t, 2, o.Progress(placed.Add(StepInterval)))
	assert.Equal(t, 3, o.Progress(placed.Add(2*StepInterval+time.Second)))
	assert.Equal(t, TrackingStepCount, o.Progress(placed.Add(time.Hour)))
}

func TestOrderTimeLeft(t *testing.T) {
	placed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	o := &Order{PlacedAt: placed}

	assert.Equal(t, EstimatedWait, o.TimeLeft(placed))
	assert.Equal(t, EstimatedWait-10*time.Minute, o.TimeLeft(placed.Add(10*time.Minute)))
	assert.Equal(t, time.Duration(0), o.TimeLeft(placed.Add(time.Hour)))
}

func TestOrderSteps(t *testing.T) {
	pickup := &Order{Info: OrderInfo{Method: MethodPickup}}
	steps := pickup.Steps()
	require.Len(t, steps, TrackingStepCount)
	assert.Equal(t, "Order Placed", steps[0])
	assert.Equal(t, "Ready for Pickup", steps[len(steps)-1])

	delivery := &Order{Info: OrderInfo{Method: MethodDelivery}}
	assert.Equal(t, "Out for Delivery", delivery.Steps()[len(steps)-1])
}

func TestTotalsDisplayRounding(t *testing.T) {
	totals := Totals{Subtotal: 51.97, Tax: 4.1576, Tip: 0, Discount: 0, Total: 56.1276}
	display := totals.Display()
	assert.Equal(t, "$51.97", display.Subtotal)
	assert.Equal(t, "$4.16", display.Tax)
	assert.Equal(t, "$56.13", display.Total)
}
