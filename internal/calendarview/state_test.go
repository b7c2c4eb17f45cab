package calendarview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC)

func TestNewViewState(t *testing.T) {
	view := NewViewState(today)

	assert.Equal(t, ModeCollapsed, view.Mode())
	// Выбранный день нормализован к началу суток
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), view.SelectedDate())
}

func TestToggle(t *testing.T) {
	view := NewViewState(today)

	view.Toggle()
	assert.Equal(t, ModeExpanded, view.Mode())

	view.Toggle()
	assert.Equal(t, ModeCollapsed, view.Mode())
}

func TestDragCrossedThreshold(t *testing.T) {
	view := NewViewState(today)

	// Вниз из свёрнутого — разворачивает
	view.DragCrossedThreshold(DragDown)
	assert.Equal(t, ModeExpanded, view.Mode())

	// Вниз из развёрнутого — ничего
	view.DragCrossedThreshold(DragDown)
	assert.Equal(t, ModeExpanded, view.Mode())

	// Вверх из развёрнутого — сворачивает
	view.DragCrossedThreshold(DragUp)
	assert.Equal(t, ModeCollapsed, view.Mode())

	// Вверх из свёрнутого — ничего
	view.DragCrossedThreshold(DragUp)
	assert.Equal(t, ModeCollapsed, view.Mode())
}

func TestSelectDayCollapsesExpandedPanel(t *testing.T) {
	view := NewViewState(today)
	view.Toggle()
	require.Equal(t, ModeExpanded, view.Mode())

	changed := view.SelectDay(time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC))

	assert.True(t, changed)
	assert.Equal(t, ModeCollapsed, view.Mode())
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), view.SelectedDate())
}

func TestSelectSameDayNotChanged(t *testing.T) {
	view := NewViewState(today)

	// Тот же день в другое время суток — день не сменился,
	// пересчитывать раскладку не нужно
	changed := view.SelectDay(time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC))

	assert.False(t, changed)
}

func TestBrowseMonthKeepsSelection(t *testing.T) {
	view := NewViewState(today)
	view.Toggle()

	view.BrowseMonth(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC))

	// Листание меняет только показываемый месяц
	assert.Equal(t, ModeExpanded, view.Mode())
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), view.SelectedDate())
	assert.Equal(t, time.October, view.MonthAnchor().Month())
}

func TestSelectDayResetsMonthAnchor(t *testing.T) {
	view := NewViewState(today)
	view.BrowseMonth(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC))

	view.SelectDay(time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.September, view.MonthAnchor().Month())
}
