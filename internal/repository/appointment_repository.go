package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/salonberry/schedule_bot/internal/model"
)

// ErrAppointmentNotFound возвращается при отмене несуществующей записи
var ErrAppointmentNotFound = errors.New("appointment not found")

// DB — минимальная поверхность пула pgx, подменяемая в тестах
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// AppointmentRepository — хранилище записей в Postgres.
// Это внешний владелец данных: движок раскладки получает от него
// неизменяемый снимок и никогда не ходит в базу напрямую.
type AppointmentRepository struct {
	db DB
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{db: pool}
}

// NewAppointmentRepositoryWithDB создаёт репозиторий поверх произвольного DB
func NewAppointmentRepositoryWithDB(db DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// Create сохраняет новую запись
func (r *AppointmentRepository) Create(ctx context.Context, a *model.Appointment) error {
	query := `
		INSERT INTO appointments (id, chat_id, date, start_time, duration_minutes, status, service_name, price_cents, staff_name)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	err := r.db.QueryRow(
		ctx, query,
		a.ID,
		a.ChatID,
		a.Date,
		a.Time,
		a.DurationMinutes,
		a.Status,
		a.ServiceName,
		a.PriceCents,
		a.StaffName,
	).Scan(&a.CreatedAt)

	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}

	return nil
}

// GetByID получает запись по ID, nil если записи нет
func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, chat_id, date, start_time, duration_minutes, status, service_name, price_cents, staff_name, created_at
		FROM appointments
		WHERE id = $1
	`

	a, err := scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment by id: %w", err)
	}

	return a, nil
}

// GetByDate получает записи бизнеса на день в порядке создания.
// Порядок важен: при раздаче колонок одновременных записей
// первая созданная получает колонку 0.
func (r *AppointmentRepository) GetByDate(ctx context.Context, chatID int64, date time.Time) ([]*model.Appointment, error) {
	query := `
		SELECT id, chat_id, date, start_time, duration_minutes, status, service_name, price_cents, staff_name, created_at
		FROM appointments
		WHERE chat_id = $1 AND date = $2
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query, chatID, date)
	if err != nil {
		return nil, fmt.Errorf("get appointments by date: %w", err)
	}
	defer rows.Close()

	return collectAppointments(rows)
}

// CountByDateRange возвращает число записей на каждый день диапазона
// [from, to) — для меток занятости на календаре
func (r *AppointmentRepository) CountByDateRange(ctx context.Context, chatID int64, from, to time.Time) (map[string]int, error) {
	query := `
		SELECT date, COUNT(*)
		FROM appointments
		WHERE chat_id = $1 AND date >= $2 AND date < $3
		GROUP BY date
	`

	rows, err := r.db.Query(ctx, query, chatID, from, to)
	if err != nil {
		return nil, fmt.Errorf("count appointments by range: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date time.Time
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[date.Format("2006-01-02")] = count
	}

	return counts, rows.Err()
}

// UpdateStatus меняет статус записи
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error {
	tag, err := r.db.Exec(ctx, `UPDATE appointments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete удаляет запись. Отменённые записи не помечаются, а исчезают
// из списка — так ведёт себя и весь остальной конвейер раскладки.
func (r *AppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// DeleteOlderThan удаляет записи с датой раньше cutoff
func (r *AppointmentRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointments WHERE date < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old appointments: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanAppointment(row pgx.Row) (*model.Appointment, error) {
	var a model.Appointment
	err := row.Scan(
		&a.ID,
		&a.ChatID,
		&a.Date,
		&a.Time,
		&a.DurationMinutes,
		&a.Status,
		&a.ServiceName,
		&a.PriceCents,
		&a.StaffName,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectAppointments(rows pgx.Rows) ([]*model.Appointment, error) {
	var appointments []*model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}
