package formatting

import (
	"fmt"

	"github.com/salonberry/schedule_bot/internal/model"
)

// FormatPrice форматирует цену из копеек в рубли
func FormatPrice(priceCents int64) string {
	if priceCents%100 == 0 {
		return fmt.Sprintf("%d ₽", priceCents/100)
	}
	return fmt.Sprintf("%.2f ₽", float64(priceCents)/100)
}

// StatusLabel возвращает метку статуса записи
func StatusLabel(status model.AppointmentStatus) string {
	switch status {
	case model.AppointmentStatusConfirmed:
		return "✅ Подтверждена"
	case model.AppointmentStatusPending:
		return "⏳ Ожидает подтверждения"
	default:
		return string(status)
	}
}

// StatusIcon возвращает короткий значок статуса для кнопок
func StatusIcon(status model.AppointmentStatus) string {
	if status == model.AppointmentStatusConfirmed {
		return "✅"
	}
	return "⏳"
}
