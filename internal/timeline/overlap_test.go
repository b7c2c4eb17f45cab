package timeline

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonberry/schedule_bot/internal/model"
)

func appt(clock string, duration int) *model.Appointment {
	return &model.Appointment{
		ID:              uuid.New(),
		Time:            clock,
		DurationMinutes: duration,
		Status:          model.AppointmentStatusConfirmed,
	}
}

func TestResolveSingleAppointment(t *testing.T) {
	a := appt("10:00", 60)

	assignments := DefaultConfig().Resolve([]*model.Appointment{a})

	require.Len(t, assignments, 1)
	assert.Equal(t, 0, assignments[a.ID].ColumnIndex)
	// Одиночная запись всё равно занимает половину ширины
	assert.Equal(t, 2, assignments[a.ID].ColumnCount)
}

func TestResolveOverlappingPair(t *testing.T) {
	a := appt("10:00", 60)
	b := appt("10:30", 60)

	assignments := DefaultConfig().Resolve([]*model.Appointment{a, b})

	require.Len(t, assignments, 2)
	assert.Equal(t, 0, assignments[a.ID].ColumnIndex)
	assert.Equal(t, 1, assignments[b.ID].ColumnIndex)
	assert.Equal(t, 2, assignments[a.ID].ColumnCount)
	assert.Equal(t, 2, assignments[b.ID].ColumnCount)
}

func TestResolveSequentialAppointments(t *testing.T) {
	// Встык, без пересечения: интервалы полуоткрытые
	a := appt("10:00", 60)
	b := appt("11:00", 60)

	assignments := DefaultConfig().Resolve([]*model.Appointment{a, b})

	assert.Equal(t, 0, assignments[a.ID].ColumnIndex)
	assert.Equal(t, 0, assignments[b.ID].ColumnIndex)
}

func TestResolveColumnReuseAfterGap(t *testing.T) {
	// A 10:00-11:00, B 10:30-11:30, C 11:00-12:00.
	// К моменту активации C запись A уже кончилась, её колонка свободна.
	a := appt("10:00", 60)
	b := appt("10:30", 60)
	c := appt("11:00", 60)

	assignments := DefaultConfig().Resolve([]*model.Appointment{a, b, c})

	assert.Equal(t, 0, assignments[a.ID].ColumnIndex)
	assert.Equal(t, 1, assignments[b.ID].ColumnIndex)
	assert.Equal(t, 0, assignments[c.ID].ColumnIndex)
}

func TestResolveTripleOverlap(t *testing.T) {
	a := appt("10:00", 90)
	b := appt("10:15", 90)
	c := appt("10:30", 90)

	assignments := DefaultConfig().Resolve([]*model.Appointment{a, b, c})

	require.Len(t, assignments, 3)
	seen := map[int]bool{}
	for _, asg := range []ColumnAssignment{assignments[a.ID], assignments[b.ID], assignments[c.ID]} {
		assert.False(t, seen[asg.ColumnIndex], "columns must not repeat among co-active appointments")
		seen[asg.ColumnIndex] = true
	}
	// Третья запись активируется, когда активны все три
	assert.Equal(t, 3, assignments[c.ID].ColumnCount)
}

func TestResolveDuplicatesBothVisible(t *testing.T) {
	// Двойная запись на одно время: обе получают свои колонки
	a := appt("14:00", 45)
	b := appt("14:00", 45)

	assignments := DefaultConfig().Resolve([]*model.Appointment{a, b})

	require.Len(t, assignments, 2)
	assert.Equal(t, 0, assignments[a.ID].ColumnIndex)
	assert.Equal(t, 1, assignments[b.ID].ColumnIndex)
}

func TestResolveDeterministic(t *testing.T) {
	appts := []*model.Appointment{
		appt("09:00", 45),
		appt("09:30", 60),
		appt("09:30", 30),
		appt("11:00", 90),
	}

	grid := DefaultConfig()
	first := grid.Resolve(appts)
	second := grid.Resolve(appts)

	assert.Equal(t, first, second)
}

func TestResolveSkipsInvalid(t *testing.T) {
	good := appt("10:00", 60)
	broken := appt("xx:yy", 60)
	zero := appt("11:00", 0)

	assignments := DefaultConfig().Resolve([]*model.Appointment{good, broken, zero})

	require.Len(t, assignments, 1)
	assert.Contains(t, assignments, good.ID)
}
