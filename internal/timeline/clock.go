package timeline

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseClock разбирает время вида "HH:MM" в минуты от полуночи
func ParseClock(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock format: %q", clock)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", clock, err)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", clock, err)
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("hour out of range: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return 0, fmt.Errorf("minute out of range: %d", minute)
	}

	return hour*60 + minute, nil
}

// FormatClock форматирует минуты от полуночи обратно в "HH:MM"
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// CalculateEndTime возвращает конец полуоткрытого интервала [start, start+duration)
func CalculateEndTime(startMinutes, durationMinutes int) int {
	return startMinutes + durationMinutes
}
