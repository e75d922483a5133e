package get_available_days

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
)

// 2025-06-02 - понедельник
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

type mockAppointmentRepo struct {
	occupying []*domain.Appointment
}

func (m *mockAppointmentRepo) GetOccupyingInRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range m.occupying {
		if !appt.StartTime.Before(from) && appt.StartTime.Before(to) {
			result = append(result, appt)
		}
	}
	return result, nil
}

type mockScheduleRepo struct {
	schedule *domain.Schedule
}

func (m *mockScheduleRepo) Get(ctx context.Context) (*domain.Schedule, error) {
	return m.schedule, nil
}

type mockCatalogClient struct {
	activity *catalogservice.Activity
	err      error
}

func (m *mockCatalogClient) GetActivity(ctx context.Context, activityID int64) (*catalogservice.Activity, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.activity, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testCatalogActivity() *catalogservice.Activity {
	return &catalogservice.Activity{
		ID:              1,
		Name:            "Стрижка",
		DurationMinutes: 60,
		IsActive:        true,
	}
}

// шаблон: понедельник и среда 09:00-10:00
func monWedSchedule() *domain.Schedule {
	return &domain.Schedule{
		WeeklySlots: []domain.WeeklySlot{
			{DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "10:00"},
			{DayOfWeek: int(time.Wednesday), StartTime: "09:00", EndTime: "10:00"},
		},
		Exceptions: []domain.ScheduleException{},
	}
}

func newTestUseCase(repo *mockAppointmentRepo, schedule *domain.Schedule, now time.Time) *UseCase {
	uc := NewUseCase(
		repo,
		&mockScheduleRepo{schedule: schedule},
		&mockCatalogClient{activity: testCatalogActivity()},
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_SevenDaysInOrder(t *testing.T) {
	uc := newTestUseCase(&mockAppointmentRepo{}, monWedSchedule(), monday.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), &Request{ActivityID: 1, WeekStart: monday})

	require.NoError(t, err)
	require.Len(t, resp.Days, domain.DaysPerWeek)
	for i, day := range resp.Days {
		assert.Equal(t, monday.AddDate(0, 0, i).Format(domain.DateFormat), day.Date)
	}

	// Открыты только понедельник и среда
	assert.True(t, resp.Days[0].Available)
	assert.False(t, resp.Days[1].Available)
	assert.True(t, resp.Days[2].Available)
	for i := 3; i < domain.DaysPerWeek; i++ {
		assert.False(t, resp.Days[i].Available)
	}
}

func TestExecute_FullyBookedDayUnavailable(t *testing.T) {
	// Единственный слот понедельника занят
	occupied := &domain.Appointment{
		ID:         7,
		ActivityID: 1,
		StartTime:  monday.Add(9 * time.Hour),
		EndTime:    monday.Add(10 * time.Hour),
		Status:     domain.StatusConfirmed,
	}
	uc := newTestUseCase(
		&mockAppointmentRepo{occupying: []*domain.Appointment{occupied}},
		monWedSchedule(),
		monday.AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ActivityID: 1, WeekStart: monday})

	require.NoError(t, err)
	assert.False(t, resp.Days[0].Available)
	assert.True(t, resp.Days[2].Available)
}

func TestExecute_ExceptionClosesDayInSummary(t *testing.T) {
	schedule := monWedSchedule()
	schedule.Exceptions = []domain.ScheduleException{
		{Date: monday.Format(domain.DateFormat)},
	}
	uc := newTestUseCase(&mockAppointmentRepo{}, schedule, monday.AddDate(0, 0, -1))

	resp, err := uc.Execute(context.Background(), &Request{ActivityID: 1, WeekStart: monday})

	require.NoError(t, err)
	assert.False(t, resp.Days[0].Available)
	assert.True(t, resp.Days[2].Available)
}

func TestExecute_ActivityNotFound(t *testing.T) {
	uc := newTestUseCase(&mockAppointmentRepo{}, monWedSchedule(), monday.AddDate(0, 0, -1))
	uc.catalogClient = &mockCatalogClient{err: catalogservice.ErrActivityNotFound}

	_, err := uc.Execute(context.Background(), &Request{ActivityID: 1, WeekStart: monday})

	assert.ErrorIs(t, err, ErrActivityNotFound)
}
