package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/salonberry/schedule_bot/internal/model"
	"github.com/salonberry/schedule_bot/internal/repository"
	"github.com/salonberry/schedule_bot/internal/timeline"
)

func newServiceWithMock(t *testing.T) (*AppointmentService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	repo := repository.NewAppointmentRepositoryWithDB(mock)
	return NewAppointmentService(repo, timeline.DefaultConfig(), zap.NewNop()), mock
}

func TestCreateAppointment(t *testing.T) {
	svc, mock := newServiceWithMock(t)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs(pgxmock.AnyArg(), int64(42), date, "10:00", 60,
			model.AppointmentStatusPending, "Стрижка", int64(150000), "Анна").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	created, err := svc.Create(context.Background(), CreateAppointmentInput{
		ChatID:          42,
		Date:            date.Add(15 * time.Hour), // время суток отбрасывается
		Time:            "10:00",
		DurationMinutes: 60,
		ServiceName:     "Стрижка",
		PriceCents:      150000,
		StaffName:       "Анна",
	})

	require.NoError(t, err)
	assert.Equal(t, model.AppointmentStatusPending, created.Status)
	assert.Equal(t, date, created.Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentValidation(t *testing.T) {
	svc, mock := newServiceWithMock(t)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input CreateAppointmentInput
	}{
		{
			name:  "мусор вместо времени",
			input: CreateAppointmentInput{Date: date, Time: "abc", DurationMinutes: 30},
		},
		{
			name:  "не по сетке 15 минут",
			input: CreateAppointmentInput{Date: date, Time: "10:07", DurationMinutes: 30},
		},
		{
			name:  "нулевая длительность",
			input: CreateAppointmentInput{Date: date, Time: "10:00", DurationMinutes: 0},
		},
		{
			name:  "до начала рабочего дня",
			input: CreateAppointmentInput{Date: date, Time: "08:00", DurationMinutes: 30},
		},
		{
			name:  "на границе окна",
			input: CreateAppointmentInput{Date: date, Time: "18:00", DurationMinutes: 30},
		},
		{
			name:  "не влезает в рабочий день",
			input: CreateAppointmentInput{Date: date, Time: "17:30", DurationMinutes: 60},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			assert.Error(t, err)
		})
	}

	// Валидация отсекает всё до похода в базу
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentDoubleBookingAllowed(t *testing.T) {
	// Пересечение с существующей записью не проверяется намеренно:
	// двойная запись допустима и отображается двумя колонками
	svc, mock := newServiceWithMock(t)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs(pgxmock.AnyArg(), int64(42), date, "10:00", 45,
			model.AppointmentStatusPending, "Маникюр", int64(0), "").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	_, err := svc.Create(context.Background(), CreateAppointmentInput{
		ChatID:          42,
		Date:            date,
		Time:            "10:00",
		DurationMinutes: 45,
		ServiceName:     "Маникюр",
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmAppointment(t *testing.T) {
	svc, mock := newServiceWithMock(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(model.AppointmentStatusConfirmed, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, svc.Confirm(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelAppointmentRemovesRow(t *testing.T) {
	svc, mock := newServiceWithMock(t)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, svc.Cancel(context.Background(), id))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelMissingAppointment(t *testing.T) {
	svc, mock := newServiceWithMock(t)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs(id).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := svc.Cancel(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrAppointmentNotFound)
}
