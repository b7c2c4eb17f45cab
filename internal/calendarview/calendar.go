package calendarview

import "time"

// weekStart нормализует дату к понедельнику её недели
func weekStart(date time.Time) time.Time {
	normalized := normalizeToDay(date)

	daysSinceMonday := int(normalized.Weekday()) - 1
	if normalized.Weekday() == time.Sunday {
		daysSinceMonday = 6
	}

	return normalized.AddDate(0, 0, -daysSinceMonday)
}

// WeekStrip возвращает 7 дней недели выбранной даты (Пн-Вс) —
// содержимое свёрнутой панели
func WeekStrip(date time.Time) []time.Time {
	start := weekStart(date)
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthGrid возвращает недели месяца выбранной даты, каждая из 7 дней, —
// содержимое развёрнутой панели. Первая и последняя недели дополняются
// днями соседних месяцев до полных строк.
func MonthGrid(date time.Time) [][]time.Time {
	firstOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
	cursor := weekStart(firstOfMonth)

	var weeks [][]time.Time
	for {
		week := make([]time.Time, 7)
		for i := range week {
			week[i] = cursor.AddDate(0, 0, i)
		}
		weeks = append(weeks, week)

		cursor = cursor.AddDate(0, 0, 7)
		if cursor.Month() != date.Month() && cursor.After(firstOfMonth) {
			break
		}
	}

	return weeks
}

// SameDay проверяет, являются ли две даты одним календарным днём
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
