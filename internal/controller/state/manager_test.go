package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonberry/schedule_bot/internal/calendarview"
)

func TestManagerDialogLifecycle(t *testing.T) {
	m := NewManager()

	assert.Equal(t, StateNone, m.GetDialog(1))

	m.SetDialog(1, StateBookingService)
	m.SetData(1, "booking_service", "Стрижка")

	assert.Equal(t, StateBookingService, m.GetDialog(1))
	value, ok := m.GetData(1, "booking_service")
	require.True(t, ok)
	assert.Equal(t, "Стрижка", value)

	m.ClearDialog(1)

	assert.Equal(t, StateNone, m.GetDialog(1))
	_, ok = m.GetData(1, "booking_service")
	assert.False(t, ok)
}

func TestManagerViewSurvivesDialogReset(t *testing.T) {
	m := NewManager()

	view := m.View(1)
	view.Toggle()
	require.Equal(t, calendarview.ModeExpanded, view.Mode())

	m.ClearDialog(1)

	// Панель календаря живёт отдельно от диалога
	assert.Equal(t, calendarview.ModeExpanded, m.View(1).Mode())
}

func TestManagerIsolatesChats(t *testing.T) {
	m := NewManager()

	m.SetDialog(1, StateBookingPrice)
	assert.Equal(t, StateNone, m.GetDialog(2))

	chats := m.Chats()
	assert.Contains(t, chats, int64(1))
}
