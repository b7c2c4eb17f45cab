package keyboards

import (
	"fmt"
	"time"

	"github.com/go-telegram/bot/models"

	"github.com/salonberry/schedule_bot/internal/calendarview"
	"github.com/salonberry/schedule_bot/internal/controller/formatting"
	"github.com/salonberry/schedule_bot/internal/model"
	"github.com/salonberry/schedule_bot/internal/timeline"
)

// Форматы callback data
const (
	CalToggle   = "cal_toggle"
	CalDay      = "cal_day:"      // cal_day:2026-09-02
	CalMonth    = "cal_month:"    // cal_month:2026-09-01 (первый день месяца)
	TapSlot     = "tap_slot:"     // tap_slot:12 (индекс слота сетки)
	TapAppt     = "tap_appt:"     // tap_appt:<uuid>
	ApptConfirm = "appt_confirm:" // appt_confirm:<uuid>
	ApptCancel  = "appt_cancel:"  // appt_cancel:<uuid>
	BookConfirm = "book_confirm"
	BookAbort   = "book_abort"
	Noop        = "noop"
)

const freeSlotsPerRow = 6

// DayScreen строит клавиатуру экрана дня: календарную панель в текущем
// режиме, кнопки записей и цели нажатий для свободных слотов
func DayScreen(view *calendarview.ViewState, layout timeline.DayLayout, busy map[string]int) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton

	if view.Mode() == calendarview.ModeExpanded {
		rows = append(rows, monthRows(view, busy)...)
	} else {
		rows = append(rows, weekStripRow(view, busy))
	}
	rows = append(rows, toggleRow(view))

	for _, block := range layout.Blocks {
		label := fmt.Sprintf("%s %s %s",
			formatting.StatusIcon(block.Appointment.Status),
			block.Appointment.Time,
			block.Appointment.ServiceName)
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: label, CallbackData: TapAppt + block.Appointment.ID.String()},
		})
	}

	rows = append(rows, freeSlotRows(layout)...)

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// weekStripRow — свёрнутая панель: семь дней недели выбранной даты
func weekStripRow(view *calendarview.ViewState, busy map[string]int) []models.InlineKeyboardButton {
	row := make([]models.InlineKeyboardButton, 0, 7)
	for _, day := range calendarview.WeekStrip(view.SelectedDate()) {
		label := fmt.Sprintf("%s %02d", formatting.GetWeekdayShort(int(day.Weekday())), day.Day())
		if calendarview.SameDay(day, view.SelectedDate()) {
			label = "[" + label + "]"
		} else if busy[day.Format("2006-01-02")] > 0 {
			label += "•"
		}
		row = append(row, models.InlineKeyboardButton{
			Text:         label,
			CallbackData: CalDay + day.Format("2006-01-02"),
		})
	}
	return row
}

// monthRows — развёрнутая панель: навигация по месяцам и сетка недель
func monthRows(view *calendarview.ViewState, busy map[string]int) [][]models.InlineKeyboardButton {
	anchor := view.MonthAnchor()
	firstOfMonth := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())

	var rows [][]models.InlineKeyboardButton

	rows = append(rows, []models.InlineKeyboardButton{
		{Text: "⬅️", CallbackData: CalMonth + firstOfMonth.AddDate(0, -1, 0).Format("2006-01-02")},
		{Text: fmt.Sprintf("%s %d", formatting.GetMonthName(anchor.Month()), anchor.Year()), CallbackData: Noop},
		{Text: "➡️", CallbackData: CalMonth + firstOfMonth.AddDate(0, 1, 0).Format("2006-01-02")},
	})

	weekdayRow := make([]models.InlineKeyboardButton, 0, 7)
	for _, name := range []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"} {
		weekdayRow = append(weekdayRow, models.InlineKeyboardButton{Text: name, CallbackData: Noop})
	}
	rows = append(rows, weekdayRow)

	for _, week := range calendarview.MonthGrid(anchor) {
		row := make([]models.InlineKeyboardButton, 0, 7)
		for _, day := range week {
			label := fmt.Sprintf("%d", day.Day())
			switch {
			case calendarview.SameDay(day, view.SelectedDate()):
				label = "[" + label + "]"
			case day.Month() != anchor.Month():
				label = "·"
			case busy[day.Format("2006-01-02")] > 0:
				label += "•"
			}
			row = append(row, models.InlineKeyboardButton{
				Text:         label,
				CallbackData: CalDay + day.Format("2006-01-02"),
			})
		}
		rows = append(rows, row)
	}

	return rows
}

// toggleRow — кнопка-шеврон разворачивания панели
func toggleRow(view *calendarview.ViewState) []models.InlineKeyboardButton {
	label := "📅 Развернуть ▾"
	if view.Mode() == calendarview.ModeExpanded {
		label = "📅 Свернуть ▴"
	}
	return []models.InlineKeyboardButton{{Text: label, CallbackData: CalToggle}}
}

// freeSlotRows — цели нажатий для свободных слотов
func freeSlotRows(layout timeline.DayLayout) [][]models.InlineKeyboardButton {
	var rows [][]models.InlineKeyboardButton
	var row []models.InlineKeyboardButton

	for _, target := range layout.FreeTargets {
		row = append(row, models.InlineKeyboardButton{
			Text:         target.Slot.Label(),
			CallbackData: fmt.Sprintf("%s%d", TapSlot, target.SlotIndex),
		})
		if len(row) == freeSlotsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	return rows
}

// AppointmentDetail строит клавиатуру карточки записи
func AppointmentDetail(a *model.Appointment) *models.InlineKeyboardMarkup {
	var rows [][]models.InlineKeyboardButton

	if a.Status == model.AppointmentStatusPending {
		rows = append(rows, []models.InlineKeyboardButton{
			{Text: "✅ Подтвердить", CallbackData: ApptConfirm + a.ID.String()},
		})
	}
	rows = append(rows, []models.InlineKeyboardButton{
		{Text: "❌ Отменить запись", CallbackData: ApptCancel + a.ID.String()},
	})

	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}
}

// BookingConfirm строит клавиатуру подтверждения новой записи
func BookingConfirm() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: "✅ Записать", CallbackData: BookConfirm},
				{Text: "❌ Отмена", CallbackData: BookAbort},
			},
		},
	}
}
