package calendarview

// DragDirection — направление жеста относительно точки его начала
type DragDirection int

const (
	DragDown DragDirection = iota // панель тянут вниз
	DragUp                        // панель тянут вверх
)

// DefaultDragThreshold — минимальное смещение жеста в пикселях,
// защищающее от случайных переключений мелкими движениями
const DefaultDragThreshold = 60.0

// DragTracker превращает непрерывные смещения жеста в не более чем одно
// дискретное событие пересечения порога за жест. Сам автомат состояний
// работает только с дискретными событиями и тестируется отдельно.
type DragTracker struct {
	threshold float64
	active    bool
	fired     bool
}

// NewDragTracker создаёт трекер жеста с заданным порогом.
// Неположительный порог заменяется значением по умолчанию.
func NewDragTracker(threshold float64) *DragTracker {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &DragTracker{threshold: threshold}
}

// Begin отмечает начало жеста: смещения отсчитываются от этой точки
func (t *DragTracker) Begin() {
	t.active = true
	t.fired = false
}

// Update принимает накопленное смещение от начала жеста.
// Возвращает направление и true ровно один раз за жест, когда модуль
// смещения впервые достиг порога. До Begin события не выдаются.
func (t *DragTracker) Update(delta float64) (DragDirection, bool) {
	if !t.active || t.fired {
		return 0, false
	}

	switch {
	case delta >= t.threshold:
		t.fired = true
		return DragDown, true
	case delta <= -t.threshold:
		t.fired = true
		return DragUp, true
	}

	return 0, false
}

// End завершает жест; следующий Begin снова разрешит событие
func (t *DragTracker) End() {
	t.active = false
	t.fired = false
}
