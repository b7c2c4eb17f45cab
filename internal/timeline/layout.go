package timeline

import (
	"fmt"
	"time"

	"github.com/salonberry/schedule_bot/internal/model"
)

// Block — одна размещённая запись. Каждая валидная запись попадает
// ровно в один блок, начинающийся в её стартовом слоте.
type Block struct {
	Appointment *model.Appointment
	Assignment  ColumnAssignment
	SlotIndex   int
	Geometry    Geometry
}

// SlotTarget — невидимая цель нажатия для свободного слота:
// нажатие означает "начать запись на это время".
type SlotTarget struct {
	Slot      TimeSlot
	SlotIndex int
	Geometry  Geometry
}

// SkippedAppointment — запись, исключённая из отрисовки, с причиной.
// Движок сам ничего не логирует, диагностика принадлежит хосту.
type SkippedAppointment struct {
	Appointment *model.Appointment
	Reason      string
}

// DayLayout — готовая раскладка одного дня. Чистая функция от снимка
// записей и выбранной даты, пересчитывается на каждую отрисовку.
type DayLayout struct {
	Date          time.Time
	Slots         []TimeSlot
	Blocks        []Block
	FreeTargets   []SlotTarget
	CursorOffset  float64
	CursorVisible bool
	Skipped       []SkippedAppointment
}

// validateAppointment проверяет пригодность записи к отрисовке.
// Битые данные не роняют сетку, а тихо исключаются (fail closed).
func (c Config) validateAppointment(a *model.Appointment) error {
	if a.Time == "" {
		return fmt.Errorf("missing start time")
	}

	start, err := ParseClock(a.Time)
	if err != nil {
		return fmt.Errorf("malformed start time: %w", err)
	}

	if a.DurationMinutes <= 0 {
		return fmt.Errorf("non-positive duration: %d", a.DurationMinutes)
	}

	if !c.Contains(start) {
		return fmt.Errorf("start %s outside business window", a.Time)
	}

	return nil
}

// BuildDayLayout собирает раскладку дня: блоки записей, свободные цели
// нажатий и линию текущего времени. Назначения колонок предыдущего дня
// сюда не протекают — всё выводится заново из переданного снимка.
func (c Config) BuildDayLayout(date time.Time, appts []*model.Appointment, now time.Time) DayLayout {
	layout := DayLayout{
		Date:  date,
		Slots: c.GenerateSlots(),
	}

	valid := make([]*model.Appointment, 0, len(appts))
	for _, a := range appts {
		if err := c.validateAppointment(a); err != nil {
			layout.Skipped = append(layout.Skipped, SkippedAppointment{
				Appointment: a,
				Reason:      err.Error(),
			})
			continue
		}
		valid = append(valid, a)
	}

	assignments := c.Resolve(valid)

	occupied := make([]bool, c.SlotCount())
	for _, a := range valid {
		start, _ := ParseClock(a.Time)
		slotIndex := c.SlotIndex(start)

		layout.Blocks = append(layout.Blocks, Block{
			Appointment: a,
			Assignment:  assignments[a.ID],
			SlotIndex:   slotIndex,
			Geometry:    c.MapToGeometry(a.DurationMinutes, assignments[a.ID], slotIndex),
		})

		for i := 0; i < SlotsSpanned(a.DurationMinutes); i++ {
			idx := slotIndex + i
			if idx >= 0 && idx < len(occupied) {
				occupied[idx] = true
			}
		}
	}

	// Последний слот — граница окна, записи на него не принимаются
	for i, slot := range layout.Slots {
		if slot.Minutes() >= c.EndMinutes() || occupied[i] {
			continue
		}
		layout.FreeTargets = append(layout.FreeTargets, SlotTarget{
			Slot:      slot,
			SlotIndex: i,
			Geometry: Geometry{
				Top:          float64(i) * c.SlotHeight,
				Height:       c.SlotHeight,
				LeftPercent:  0,
				WidthPercent: 100,
			},
		})
	}

	layout.CursorOffset, layout.CursorVisible = c.CursorOffset(now, date)

	return layout
}
