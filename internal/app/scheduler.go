package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/salonberry/schedule_bot/internal/service"
)

// retentionDays — сколько дней прошедшие записи остаются в базе
const retentionDays = 90

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	appointments *service.AppointmentService
	refresh      func(ctx context.Context)
	logger       *zap.Logger
	stopChan     chan struct{}
}

// NewScheduler создаёт планировщик. refresh вызывается раз в минуту
// для обновления линии текущего времени у открытых экранов дня;
// сам движок таймер не держит. refresh может быть nil.
func NewScheduler(appointments *service.AppointmentService, refresh func(ctx context.Context), logger *zap.Logger) *Scheduler {
	return &Scheduler{
		appointments: appointments,
		refresh:      refresh,
		logger:       logger,
		stopChan:     make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	go s.runPurgeTask(ctx)
	if s.refresh != nil {
		go s.runCursorTask(ctx)
	}
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runPurgeTask раз в сутки удаляет записи старше окна хранения
func (s *Scheduler) runPurgeTask(ctx context.Context) {
	s.purge(ctx)

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purge(ctx)
		case <-s.stopChan:
			s.logger.Info("Purge task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Purge task cancelled")
			return
		}
	}
}

// runCursorTask раз в минуту пересчитывает открытые экраны дня.
// Минутной частоты достаточно при 15-минутной сетке.
func (s *Scheduler) runCursorTask(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.refresh(ctx)
		case <-s.stopChan:
			s.logger.Info("Cursor refresh task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Cursor refresh task cancelled")
			return
		}
	}
}

func (s *Scheduler) purge(ctx context.Context) {
	removed, err := s.appointments.PurgeOld(ctx, retentionDays)
	if err != nil {
		s.logger.Error("Failed to purge old appointments", zap.Error(err))
		return
	}

	if removed > 0 {
		s.logger.Info("Purged old appointments", zap.Int64("removed", removed))
	}
}
