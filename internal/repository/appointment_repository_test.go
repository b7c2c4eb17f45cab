package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonberry/schedule_bot/internal/model"
)

var apptColumns = []string{
	"id", "chat_id", "date", "start_time", "duration_minutes",
	"status", "service_name", "price_cents", "staff_name", "created_at",
}

func newRepoWithMock(t *testing.T) (*AppointmentRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewAppointmentRepositoryWithDB(mock), mock
}

func TestCreateSetsCreatedAt(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	createdAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	a := &model.Appointment{
		ID:              uuid.New(),
		ChatID:          42,
		Date:            time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Time:            "10:00",
		DurationMinutes: 60,
		Status:          model.AppointmentStatusPending,
		ServiceName:     "Стрижка",
	}

	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs(a.ID, a.ChatID, a.Date, a.Time, a.DurationMinutes,
			a.Status, a.ServiceName, a.PriceCents, a.StaffName).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	require.NoError(t, repo.Create(context.Background(), a))
	assert.Equal(t, createdAt, a.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDNotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WithArgs(id).
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByID(context.Background(), id)

	// Отсутствие записи это не ошибка
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetByDateOrderedByCreation(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	first := uuid.New()
	second := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WithArgs(int64(42), date).
		WillReturnRows(pgxmock.NewRows(apptColumns).
			AddRow(first, int64(42), date, "10:00", 60,
				model.AppointmentStatusConfirmed, "Стрижка", int64(150000), "", time.Now()).
			AddRow(second, int64(42), date, "10:00", 60,
				model.AppointmentStatusPending, "Окрашивание", int64(0), "Анна", time.Now()))

	appts, err := repo.GetByDate(context.Background(), 42, date)

	require.NoError(t, err)
	require.Len(t, appts, 2)
	// Порядок создания сохранён: он определяет раздачу колонок
	assert.Equal(t, first, appts[0].ID)
	assert.Equal(t, second, appts[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByDateRange(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT date, COUNT").
		WithArgs(int64(42), from, to).
		WillReturnRows(pgxmock.NewRows([]string{"date", "count"}).
			AddRow(time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), 3).
			AddRow(time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), 1))

	counts, err := repo.CountByDateRange(context.Background(), 42, from, to)

	require.NoError(t, err)
	assert.Equal(t, map[string]int{"2026-09-01": 3, "2026-09-03": 1}, counts)
}

func TestUpdateStatusNotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	id := uuid.New()

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(model.AppointmentStatusConfirmed, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateStatus(context.Background(), id, model.AppointmentStatusConfirmed)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestDeleteOlderThan(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	cutoff := time.Date(2026, 6, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("DELETE FROM appointments WHERE date").
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 17))

	removed, err := repo.DeleteOlderThan(context.Background(), cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(17), removed)
}
