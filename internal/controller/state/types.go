package state

import "github.com/salonberry/schedule_bot/internal/calendarview"

// DialogState представляет текущий шаг диалога записи в чате
type DialogState string

const (
	StateNone DialogState = "" // Нет активного диалога

	// Шаги создания записи с уже выбранным слотом
	StateBookingService  DialogState = "booking_service"
	StateBookingDuration DialogState = "booking_duration"
	StateBookingPrice    DialogState = "booking_price"
	StateBookingStaff    DialogState = "booking_staff"
)

// ChatData хранит состояние одного чата: шаг диалога, временные данные
// и состояние календарной панели экрана дня
type ChatData struct {
	Dialog DialogState
	Data   map[string]interface{}
	View   *calendarview.ViewState
}
