package timeline

import "time"

// CursorOffset возвращает вертикальное смещение линии текущего времени.
// ok == false, когда линию рисовать не нужно: время вне рабочего окна
// либо отображается не сегодняшний день.
//
// Движок не держит таймер: частоту пересчёта выбирает хост
// (раз в минуту достаточно при 15-минутной сетке).
func (c Config) CursorOffset(now time.Time, displayed time.Time) (float64, bool) {
	if !isSameDay(now, displayed) {
		return 0, false
	}

	minutes := now.Hour()*60 + now.Minute()
	if !c.Contains(minutes) {
		return 0, false
	}

	hoursFromStart := float64(now.Hour()-c.StartHour) + float64(now.Minute())/60.0
	return hoursFromStart * SlotsPerHour * c.SlotHeight, true
}

// isSameDay проверяет, являются ли две даты одним календарным днём
func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() &&
		a.Month() == b.Month() &&
		a.Day() == b.Day()
}
