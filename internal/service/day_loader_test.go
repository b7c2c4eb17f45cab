package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salonberry/schedule_bot/internal/model"
)

func TestDayLoaderDeliversFreshFetch(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	appts := []*model.Appointment{{ID: uuid.New(), Time: "10:00", DurationMinutes: 60}}

	fetch := func(ctx context.Context, d time.Time) ([]*model.Appointment, error) {
		return appts, nil
	}
	loader := NewDayLoader(fetch, zap.NewNop())

	delivered := make(chan []*model.Appointment, 1)
	loader.Load(context.Background(), date, func(d time.Time, got []*model.Appointment) {
		assert.Equal(t, date, d)
		delivered <- got
	})

	select {
	case got := <-delivered:
		assert.Equal(t, appts, got)
	case <-time.After(time.Second):
		t.Fatal("delivery timed out")
	}
}

func TestDayLoaderDiscardsStaleFetch(t *testing.T) {
	dayA := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	dayB := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	// Загрузка дня A зависает, пока не придёт разрешение; за это время
	// пользователь успевает выбрать день B
	releaseA := make(chan struct{})
	fetch := func(ctx context.Context, d time.Time) ([]*model.Appointment, error) {
		if d.Equal(dayA) {
			<-releaseA
		}
		return []*model.Appointment{{ID: uuid.New(), Time: "09:00", DurationMinutes: 30}}, nil
	}
	loader := NewDayLoader(fetch, zap.NewNop())

	var mu sync.Mutex
	var deliveredDays []time.Time
	done := make(chan struct{}, 2)

	deliver := func(d time.Time, appts []*model.Appointment) {
		mu.Lock()
		deliveredDays = append(deliveredDays, d)
		mu.Unlock()
		done <- struct{}{}
	}

	loader.Load(context.Background(), dayA, deliver)
	loader.Load(context.Background(), dayB, deliver)

	// Сначала приходит быстрый день B
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("fresh delivery timed out")
	}

	// Затем отпускаем зависший день A: он устарел и доставлен быть не должен
	close(releaseA)
	select {
	case <-done:
		t.Fatal("stale fetch must be discarded")
	case <-time.After(100 * time.Millisecond):
	}

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, deliveredDays, 1)
	assert.Equal(t, dayB, deliveredDays[0])
}

func TestDayLoaderSwallowsFetchError(t *testing.T) {
	fetch := func(ctx context.Context, d time.Time) ([]*model.Appointment, error) {
		return nil, errors.New("db down")
	}
	loader := NewDayLoader(fetch, zap.NewNop())

	delivered := make(chan struct{}, 1)
	loader.Load(context.Background(), time.Now(), func(d time.Time, appts []*model.Appointment) {
		delivered <- struct{}{}
	})

	select {
	case <-delivered:
		t.Fatal("failed fetch must not be delivered")
	case <-time.After(100 * time.Millisecond):
	}
}
