package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed" // Подтверждена бизнесом
	AppointmentStatusPending   AppointmentStatus = "pending"   // Ожидает подтверждения
)

// Appointment представляет одну запись клиента.
// Отменённые записи удаляются из хранилища, а не помечаются статусом.
type Appointment struct {
	ID              uuid.UUID         `json:"id"`
	ChatID          int64             `json:"chat_id"`
	Date            time.Time         `json:"date"` // только дата, время хранится отдельно
	Time            string            `json:"time"` // "HH:MM", кратно 15 минутам
	DurationMinutes int               `json:"duration_minutes"`
	Status          AppointmentStatus `json:"status"`
	ServiceName     string            `json:"service_name"`
	PriceCents      int64             `json:"price_cents"`
	StaffName       string            `json:"staff_name"`
	CreatedAt       time.Time         `json:"created_at"`
}
