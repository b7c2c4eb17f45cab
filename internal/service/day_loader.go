package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/salonberry/schedule_bot/internal/model"
)

// FetchFunc загружает записи на день
type FetchFunc func(ctx context.Context, date time.Time) ([]*model.Appointment, error)

// DayLoader защищает экран от гонки устаревших ответов: если во время
// загрузки выбранная дата сменилась, опоздавший ответ тихо отбрасывается
// и не затирает данные более нового выбора.
type DayLoader struct {
	mu         sync.Mutex
	generation uint64
	fetch      FetchFunc
	logger     *zap.Logger
}

func NewDayLoader(fetch FetchFunc, logger *zap.Logger) *DayLoader {
	return &DayLoader{
		fetch:  fetch,
		logger: logger,
	}
}

// Load запускает загрузку записей на дату и доставляет результат через
// deliver, только если за время загрузки не начался более новый Load.
// До прихода данных вызывающая сторона показывает пустую сетку.
func (l *DayLoader) Load(ctx context.Context, date time.Time, deliver func(date time.Time, appts []*model.Appointment)) {
	l.mu.Lock()
	l.generation++
	generation := l.generation
	l.mu.Unlock()

	go func() {
		appts, err := l.fetch(ctx, date)

		l.mu.Lock()
		stale := generation != l.generation
		l.mu.Unlock()

		if stale {
			l.logger.Debug("Discarding stale day fetch",
				zap.String("date", date.Format("2006-01-02")))
			return
		}

		if err != nil {
			l.logger.Error("Day fetch failed",
				zap.String("date", date.Format("2006-01-02")),
				zap.Error(err))
			return
		}

		deliver(date, appts)
	}()
}
