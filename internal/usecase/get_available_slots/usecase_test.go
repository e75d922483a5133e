package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
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
	err      error
}

func (m *mockScheduleRepo) Get(ctx context.Context) (*domain.Schedule, error) {
	if m.err != nil {
		return nil, m.err
	}
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

func mondaySchedule() *domain.Schedule {
	return &domain.Schedule{
		WeeklySlots: []domain.WeeklySlot{
			{DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "11:00"},
		},
		Exceptions: []domain.ScheduleException{},
	}
}

func newTestUseCase(repo *mockAppointmentRepo, schedRepo *mockScheduleRepo, catalog *mockCatalogClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, schedRepo, catalog, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_ReturnsSlots(t *testing.T) {
	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{schedule: mondaySchedule()},
		&mockCatalogClient{activity: testCatalogActivity()},
		monday.AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ActivityID: 1, Date: monday})

	require.NoError(t, err)
	assert.Equal(t, monday.Format(domain.DateFormat), resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, monday.Add(9*time.Hour), resp.Slots[0].StartTime)
	assert.Equal(t, monday.Add(10*time.Hour), resp.Slots[1].StartTime)
	assert.Equal(t, 60, resp.Slots[0].DurationMinutes)
}

func TestExecute_OccupiedSlotExcluded(t *testing.T) {
	occupied := &domain.Appointment{
		ID:         7,
		ActivityID: 1,
		StartTime:  monday.Add(9 * time.Hour),
		EndTime:    monday.Add(10 * time.Hour),
		Status:     domain.StatusConfirmed,
	}
	uc := newTestUseCase(
		&mockAppointmentRepo{occupying: []*domain.Appointment{occupied}},
		&mockScheduleRepo{schedule: mondaySchedule()},
		&mockCatalogClient{activity: testCatalogActivity()},
		monday.AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ActivityID: 1, Date: monday})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, monday.Add(10*time.Hour), resp.Slots[0].StartTime)
}

func TestExecute_NoScheduleSavedMeansNoSlots(t *testing.T) {
	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&mockCatalogClient{activity: testCatalogActivity()},
		monday.AddDate(0, 0, -1),
	)

	resp, err := uc.Execute(context.Background(), &Request{ActivityID: 1, Date: monday})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_ActivityNotFound(t *testing.T) {
	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{schedule: mondaySchedule()},
		&mockCatalogClient{err: catalogservice.ErrActivityNotFound},
		monday.AddDate(0, 0, -1),
	)

	_, err := uc.Execute(context.Background(), &Request{ActivityID: 1, Date: monday})

	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestExecute_ActivityInactive(t *testing.T) {
	activity := testCatalogActivity()
	activity.IsActive = false
	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{schedule: mondaySchedule()},
		&mockCatalogClient{activity: activity},
		monday.AddDate(0, 0, -1),
	)

	_, err := uc.Execute(context.Background(), &Request{ActivityID: 1, Date: monday})

	assert.ErrorIs(t, err, ErrActivityInactive)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(
		&mockAppointmentRepo{},
		&mockScheduleRepo{schedule: mondaySchedule()},
		&mockCatalogClient{activity: testCatalogActivity()},
		monday.AddDate(0, 0, -1),
	)

	_, err := uc.Execute(context.Background(), &Request{ActivityID: 0, Date: monday})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
