package calendarview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDragTrackerFiresOncePerGesture(t *testing.T) {
	tracker := NewDragTracker(60)
	tracker.Begin()

	_, fired := tracker.Update(30)
	assert.False(t, fired, "below threshold")

	direction, fired := tracker.Update(65)
	assert.True(t, fired)
	assert.Equal(t, DragDown, direction)

	// Дальнейшее движение в том же жесте событий не даёт
	_, fired = tracker.Update(120)
	assert.False(t, fired)
	_, fired = tracker.Update(-120)
	assert.False(t, fired)
}

func TestDragTrackerUpDirection(t *testing.T) {
	tracker := NewDragTracker(60)
	tracker.Begin()

	direction, fired := tracker.Update(-60)
	assert.True(t, fired)
	assert.Equal(t, DragUp, direction)
}

func TestDragTrackerExactThreshold(t *testing.T) {
	tracker := NewDragTracker(60)
	tracker.Begin()

	_, fired := tracker.Update(59.9)
	assert.False(t, fired)

	_, fired = tracker.Update(60)
	assert.True(t, fired)
}

func TestDragTrackerRequiresBegin(t *testing.T) {
	tracker := NewDragTracker(60)

	_, fired := tracker.Update(100)
	assert.False(t, fired, "no gesture started")
}

func TestDragTrackerNewGestureFiresAgain(t *testing.T) {
	tracker := NewDragTracker(60)

	tracker.Begin()
	_, fired := tracker.Update(80)
	assert.True(t, fired)
	tracker.End()

	tracker.Begin()
	_, fired = tracker.Update(-80)
	assert.True(t, fired)
}

func TestDragTrackerDefaultThreshold(t *testing.T) {
	tracker := NewDragTracker(0)
	tracker.Begin()

	_, fired := tracker.Update(DefaultDragThreshold - 1)
	assert.False(t, fired)

	_, fired = tracker.Update(DefaultDragThreshold)
	assert.True(t, fired)
}
