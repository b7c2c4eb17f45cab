package calendarview

import "time"

// Mode — режим календарной панели
type Mode string

const (
	ModeCollapsed Mode = "collapsed" // видна недельная полоса
	ModeExpanded  Mode = "expanded"  // развёрнут месячный календарь
)

// ViewState — конечный автомат календарной панели.
// Держит единственный источник истины о выбранной дате; все производные
// раскладки пересчитываются после её смены. Терминального состояния нет,
// автомат живёт всё время жизни экрана.
type ViewState struct {
	mode         Mode
	selectedDate time.Time
	monthAnchor  time.Time // месяц, показываемый развёрнутым календарём
}

// NewViewState создаёт автомат в начальном состоянии:
// свёрнут, выбран сегодняшний день
func NewViewState(today time.Time) *ViewState {
	day := normalizeToDay(today)
	return &ViewState{
		mode:         ModeCollapsed,
		selectedDate: day,
		monthAnchor:  day,
	}
}

// Mode возвращает текущий режим панели
func (s *ViewState) Mode() Mode {
	return s.mode
}

// SelectedDate возвращает выбранный день
func (s *ViewState) SelectedDate() time.Time {
	return s.selectedDate
}

// Toggle переключает режим панели по нажатию
func (s *ViewState) Toggle() {
	if s.mode == ModeCollapsed {
		s.mode = ModeExpanded
	} else {
		s.mode = ModeCollapsed
	}
}

// DragCrossedThreshold обрабатывает дискретное событие жеста:
// смахивание вниз разворачивает панель, вверх — сворачивает.
// Несовпадающее направление переходов не даёт.
func (s *ViewState) DragCrossedThreshold(direction DragDirection) {
	switch {
	case direction == DragDown && s.mode == ModeCollapsed:
		s.mode = ModeExpanded
	case direction == DragUp && s.mode == ModeExpanded:
		s.mode = ModeCollapsed
	}
}

// SelectDay меняет выбранный день. Выбор дня в развёрнутом календаре
// сворачивает его. Возвращает true, если день действительно сменился
// и производные раскладки нужно пересчитать.
func (s *ViewState) SelectDay(date time.Time) bool {
	date = normalizeToDay(date)
	changed := !s.selectedDate.Equal(date)
	s.selectedDate = date
	s.monthAnchor = date

	if s.mode == ModeExpanded {
		s.mode = ModeCollapsed
	}

	return changed
}

// MonthAnchor возвращает месяц, который показывает развёрнутый календарь
func (s *ViewState) MonthAnchor() time.Time {
	return s.monthAnchor
}

// BrowseMonth листает развёрнутый календарь на другой месяц,
// не меняя ни выбранный день, ни режим панели
func (s *ViewState) BrowseMonth(date time.Time) {
	s.monthAnchor = normalizeToDay(date)
}

// normalizeToDay нормализует время к началу дня
func normalizeToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
