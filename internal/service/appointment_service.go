package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/salonberry/schedule_bot/internal/model"
	"github.com/salonberry/schedule_bot/internal/repository"
	"github.com/salonberry/schedule_bot/internal/timeline"
)

// AppointmentService — бизнес-правила работы с записями
type AppointmentService struct {
	repo   *repository.AppointmentRepository
	grid   timeline.Config
	logger *zap.Logger
}

func NewAppointmentService(repo *repository.AppointmentRepository, grid timeline.Config, logger *zap.Logger) *AppointmentService {
	return &AppointmentService{
		repo:   repo,
		grid:   grid,
		logger: logger,
	}
}

// CreateAppointmentInput — данные новой записи
type CreateAppointmentInput struct {
	ChatID          int64
	Date            time.Time
	Time            string
	DurationMinutes int
	ServiceName     string
	PriceCents      int64
	StaffName       string
}

// Create создаёт запись со статусом pending.
// Пересечение с другой записью не блокирует создание: двойная запись
// допустима и видимо отображается раскладкой двумя узкими колонками.
func (s *AppointmentService) Create(ctx context.Context, input CreateAppointmentInput) (*model.Appointment, error) {
	start, err := timeline.ParseClock(input.Time)
	if err != nil {
		return nil, fmt.Errorf("parse start time: %w", err)
	}

	if start%timeline.SlotMinutes != 0 {
		return nil, fmt.Errorf("start time %s is not aligned to %d minutes", input.Time, timeline.SlotMinutes)
	}

	if input.DurationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	if !s.grid.Contains(start) {
		return nil, fmt.Errorf("start time %s is outside business hours", input.Time)
	}

	if timeline.CalculateEndTime(start, input.DurationMinutes) > s.grid.EndMinutes() {
		return nil, fmt.Errorf("appointment does not fit into business hours")
	}

	appointment := &model.Appointment{
		ID:              uuid.New(),
		ChatID:          input.ChatID,
		Date:            normalizeToDay(input.Date),
		Time:            input.Time,
		DurationMinutes: input.DurationMinutes,
		Status:          model.AppointmentStatusPending,
		ServiceName:     input.ServiceName,
		PriceCents:      input.PriceCents,
		StaffName:       input.StaffName,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.logger.Info("Appointment created",
		zap.String("id", appointment.ID.String()),
		zap.String("date", appointment.Date.Format("2006-01-02")),
		zap.String("time", appointment.Time))

	return appointment, nil
}

// GetDay возвращает снимок записей дня в порядке создания
func (s *AppointmentService) GetDay(ctx context.Context, chatID int64, date time.Time) ([]*model.Appointment, error) {
	return s.repo.GetByDate(ctx, chatID, normalizeToDay(date))
}

// GetByID возвращает запись, nil если её нет
func (s *AppointmentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

// Confirm подтверждает запись
func (s *AppointmentService) Confirm(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.UpdateStatus(ctx, id, model.AppointmentStatusConfirmed); err != nil {
		return err
	}

	s.logger.Info("Appointment confirmed", zap.String("id", id.String()))
	return nil
}

// Cancel отменяет запись: удаляет её из хранилища
func (s *AppointmentService) Cancel(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("Appointment cancelled", zap.String("id", id.String()))
	return nil
}

// DayCounts возвращает занятость дней диапазона [from, to)
func (s *AppointmentService) DayCounts(ctx context.Context, chatID int64, from, to time.Time) (map[string]int, error) {
	return s.repo.CountByDateRange(ctx, chatID, normalizeToDay(from), normalizeToDay(to))
}

// PurgeOld удаляет записи старше окна хранения
func (s *AppointmentService) PurgeOld(ctx context.Context, retentionDays int) (int64, error) {
	cutoff := normalizeToDay(time.Now()).AddDate(0, 0, -retentionDays)
	return s.repo.DeleteOlderThan(ctx, cutoff)
}

// normalizeToDay нормализует время к началу дня
func normalizeToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
