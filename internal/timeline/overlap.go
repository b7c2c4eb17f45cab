package timeline

import (
	"github.com/google/uuid"

	"github.com/salonberry/schedule_bot/internal/model"
)

// ColumnAssignment задаёт дорожку записи среди одновременных записей:
// номер колонки и общее число колонок в её временной зоне.
// Вычисляется заново на каждую раскладку и нигде не хранится.
type ColumnAssignment struct {
	ColumnIndex int
	ColumnCount int
}

// minColumnCount — даже одиночная запись резервирует половину ширины.
// Правило отображения исходного макета, сохранено как есть.
const minColumnCount = 2

type spannedAppointment struct {
	appt  *model.Appointment
	start int // минуты от полуночи
	end   int
}

// Resolve распределяет записи одного дня по колонкам так, чтобы
// пересекающиеся интервалы никогда не оказались в одной колонке.
//
// Алгоритм двухфазный и чистый: сначала по всем слотам в хронологическом
// порядке вычисляются назначения колонок, отрисовка происходит отдельно.
// При первом появлении записи в активных ей отдаётся наименьшая свободная
// колонка среди уже назначенных активных; при одновременном появлении
// нескольких записей колонки раздаются в порядке исходного списка.
//
// Дубликаты (одинаковое время и длительность) сохраняются оба: двойная
// запись должна быть видна, а не спрятана.
func (c Config) Resolve(appts []*model.Appointment) map[uuid.UUID]ColumnAssignment {
	spans := make([]spannedAppointment, 0, len(appts))
	for _, a := range appts {
		start, err := ParseClock(a.Time)
		if err != nil || a.DurationMinutes <= 0 {
			continue
		}
		spans = append(spans, spannedAppointment{
			appt:  a,
			start: start,
			end:   CalculateEndTime(start, a.DurationMinutes),
		})
	}

	assignments := make(map[uuid.UUID]ColumnAssignment, len(spans))

	for m := c.StartMinutes(); m < c.EndMinutes(); m += SlotMinutes {
		active := active(spans, m)
		if len(active) == 0 {
			continue
		}

		count := len(active)
		if count < minColumnCount {
			count = minColumnCount
		}

		for _, sp := range active {
			if _, assigned := assignments[sp.appt.ID]; assigned {
				continue
			}

			used := make(map[int]bool, len(active))
			for _, other := range active {
				if other.appt.ID == sp.appt.ID {
					continue
				}
				if asg, ok := assignments[other.appt.ID]; ok {
					used[asg.ColumnIndex] = true
				}
			}

			column := 0
			for used[column] {
				column++
			}

			assignments[sp.appt.ID] = ColumnAssignment{
				ColumnIndex: column,
				ColumnCount: count,
			}
		}
	}

	return assignments
}

// active возвращает записи, чей интервал содержит данную минуту,
// в порядке исходного списка
func active(spans []spannedAppointment, minute int) []spannedAppointment {
	var result []spannedAppointment
	for _, sp := range spans {
		if minute >= sp.start && minute < sp.end {
			result = append(result, sp)
		}
	}
	return result
}
