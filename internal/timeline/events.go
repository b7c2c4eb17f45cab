package timeline

import (
	"time"

	"github.com/google/uuid"
)

// Events — обратные вызовы хост-экрана. Движок ничего не знает
// о навигации: нажатия превращаются в намерения и отдаются наружу.
type Events interface {
	// SlotTapped — нажатие на свободный слот: начать запись
	// на это время с уже подставленной датой и временем
	SlotTapped(date time.Time, clock string)
	// AppointmentTapped — нажатие на блок записи: открыть детали
	AppointmentTapped(appointmentID uuid.UUID)
}

// Dispatcher маршрутизирует нажатия по готовой раскладке дня
type Dispatcher struct {
	layout DayLayout
	events Events
}

// NewDispatcher создаёт диспетчер нажатий для раскладки
func NewDispatcher(layout DayLayout, events Events) *Dispatcher {
	return &Dispatcher{layout: layout, events: events}
}

// TapSlot обрабатывает нажатие на слот по индексу сетки.
// Возвращает false, если слот занят или индекса нет в раскладке.
func (d *Dispatcher) TapSlot(slotIndex int) bool {
	for _, target := range d.layout.FreeTargets {
		if target.SlotIndex == slotIndex {
			d.events.SlotTapped(d.layout.Date, target.Slot.Label())
			return true
		}
	}
	return false
}

// TapAppointment обрабатывает нажатие на блок записи.
// Возвращает false, если записи нет в раскладке.
func (d *Dispatcher) TapAppointment(id uuid.UUID) bool {
	for _, block := range d.layout.Blocks {
		if block.Appointment.ID == id {
			d.events.AppointmentTapped(id)
			return true
		}
	}
	return false
}
