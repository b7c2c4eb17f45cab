package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotCount(t *testing.T) {
	// Окно 09:00-18:00 даёт 37 слотов: 36 четвертей часа плюс граница
	assert.Equal(t, 37, DefaultConfig().SlotCount())

	short := Config{StartHour: 10, EndHour: 12, SlotHeight: 48}
	assert.Equal(t, 9, short.SlotCount())
}

func TestGenerateSlots(t *testing.T) {
	slots := DefaultConfig().GenerateSlots()

	require.Len(t, slots, 37)
	assert.Equal(t, "09:00", slots[0].Label())
	assert.Equal(t, "09:15", slots[1].Label())
	assert.Equal(t, "18:00", slots[36].Label())

	// Порядок стабилен от вызова к вызову
	again := DefaultConfig().GenerateSlots()
	assert.Equal(t, slots, again)
}

func TestSlotIndex(t *testing.T) {
	grid := DefaultConfig()

	assert.Equal(t, 0, grid.SlotIndex(540))   // 09:00
	assert.Equal(t, 1, grid.SlotIndex(555))   // 09:15
	assert.Equal(t, 36, grid.SlotIndex(1080)) // 18:00
}

func TestContains(t *testing.T) {
	grid := DefaultConfig()

	assert.True(t, grid.Contains(540))   // 09:00 включительно
	assert.True(t, grid.Contains(1079))  // 17:59
	assert.False(t, grid.Contains(1080)) // 18:00 исключительно
	assert.False(t, grid.Contains(539))  // 08:59
}
