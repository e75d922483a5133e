package create_appointment

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// 2025-06-02 - понедельник
var monday = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

// Моки

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

// mockAppointmentRepo имитирует частичный уникальный индекс по (activity_id, start_time):
// вторая вставка в тот же слот возвращает ErrSlotTaken, как это делает Postgres
type mockAppointmentRepo struct {
	mu      sync.Mutex
	nextID  int64
	created []*domain.Appointment
}

func newMockAppointmentRepo(preexisting ...*domain.Appointment) *mockAppointmentRepo {
	return &mockAppointmentRepo{nextID: 100, created: preexisting}
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.created {
		if !existing.OccupiesCalendar() {
			continue
		}
		if existing.ActivityID == appointment.ActivityID && existing.StartTime.Equal(appointment.StartTime) {
			return nil, appointmentRepo.ErrSlotTaken
		}
	}

	m.nextID++
	appointment.ID = m.nextID
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = appointment.CreatedAt
	m.created = append(m.created, appointment)
	return appointment, nil
}

func (m *mockAppointmentRepo) GetOccupyingInRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.Appointment, 0)
	for _, appt := range m.created {
		if !appt.OccupiesCalendar() {
			continue
		}
		if !appt.StartTime.Before(from) && appt.StartTime.Before(to) {
			result = append(result, appt)
		}
	}
	return result, nil
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *mockTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

// Хелперы

func testCatalogActivity() *catalogservice.Activity {
	return &catalogservice.Activity{
		ID:                    1,
		Name:                  "Стрижка",
		Price:                 ptr.Ptr(1500.0),
		DurationMinutes:       60,
		MinBookingNoticeHours: 0,
		IsActive:              true,
	}
}

// mondaySchedule шаблон: понедельник 09:00-12:00
func mondaySchedule() *domain.Schedule {
	return &domain.Schedule{
		WeeklySlots: []domain.WeeklySlot{
			{DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "12:00"},
		},
		Exceptions: []domain.ScheduleException{},
	}
}

func newTestUseCase(
	repo *mockAppointmentRepo,
	schedule *domain.Schedule,
	activity *catalogservice.Activity,
	now time.Time,
	autoConfirm bool,
) *UseCase {
	uc := NewUseCase(
		repo,
		&mockScheduleRepo{schedule: schedule},
		&mockCatalogClient{activity: activity},
		&mockTxManager{},
		autoConfirm,
		nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		ActivityID: 1,
		Date:       monday,
		StartTime:  "10:00",
		ClientName: "Иван Петров",
	}
}

// Тесты

func TestExecute_Success(t *testing.T) {
	repo := newMockAppointmentRepo()
	uc := newTestUseCase(repo, mondaySchedule(), testCatalogActivity(), monday.AddDate(0, 0, -1), false)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, monday.Add(10*time.Hour), resp.StartTime)
	assert.Equal(t, monday.Add(11*time.Hour), resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, "Стрижка", resp.ActivityName)
	require.NotNil(t, resp.ActivityPrice)
	assert.Equal(t, 1500.0, *resp.ActivityPrice)
}

func TestExecute_AutoConfirm(t *testing.T) {
	repo := newMockAppointmentRepo()
	uc := newTestUseCase(repo, mondaySchedule(), testCatalogActivity(), monday.AddDate(0, 0, -1), true)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
}

func TestExecute_ActivityNotFound(t *testing.T) {
	uc := newTestUseCase(newMockAppointmentRepo(), mondaySchedule(), nil, monday.AddDate(0, 0, -1), false)
	uc.catalogClient = &mockCatalogClient{err: catalogservice.ErrActivityNotFound}

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestExecute_ActivityInactive(t *testing.T) {
	activity := testCatalogActivity()
	activity.IsActive = false
	uc := newTestUseCase(newMockAppointmentRepo(), mondaySchedule(), activity, monday.AddDate(0, 0, -1), false)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrActivityInactive)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(newMockAppointmentRepo(), mondaySchedule(), testCatalogActivity(), monday.AddDate(0, 0, -1), false)

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"нулевой activityID", func(r *Request) { r.ActivityID = 0 }},
		{"пустое имя клиента", func(r *Request) { r.ClientName = "  " }},
		{"кривое время", func(r *Request) { r.StartTime = "1000" }},
		{"email без @", func(r *Request) { r.ClientEmail = ptr.Ptr("not-an-email") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_TooSoon(t *testing.T) {
	activity := testCatalogActivity()
	activity.MinBookingNoticeHours = 24

	// Сейчас понедельник 08:00 - до слота 10:00 меньше суток
	now := monday.Add(8 * time.Hour)
	uc := newTestUseCase(newMockAppointmentRepo(), mondaySchedule(), activity, now, false)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrTooSoon)
}

func TestExecute_ExactNoticeBoundaryAllowed(t *testing.T) {
	activity := testCatalogActivity()
	activity.MinBookingNoticeHours = 24

	// Ровно 24 часа до слота - граница допустима
	now := monday.Add(10 * time.Hour).Add(-24 * time.Hour)
	uc := newTestUseCase(newMockAppointmentRepo(), mondaySchedule(), activity, now, false)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestExecute_OutsideAvailability(t *testing.T) {
	uc := newTestUseCase(newMockAppointmentRepo(), mondaySchedule(), testCatalogActivity(), monday.AddDate(0, 0, -1), false)

	tests := []struct {
		name string
		date time.Time
		at   string
	}{
		{"время вне шаблона", monday, "15:00"},
		{"не на границе сетки", monday, "10:30"},
		{"день без интервалов", monday.AddDate(0, 0, 1), "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Date = tt.date
			req.StartTime = types.TimeString(tt.at)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrOutsideAvailability)
		})
	}
}

func TestExecute_ExceptionClosesDay(t *testing.T) {
	schedule := mondaySchedule()
	schedule.Exceptions = []domain.ScheduleException{
		{Date: monday.Format(domain.DateFormat), Reason: "Выходной"},
	}
	uc := newTestUseCase(newMockAppointmentRepo(), schedule, testCatalogActivity(), monday.AddDate(0, 0, -1), false)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrOutsideAvailability)
}

func TestExecute_SlotConflictWithExisting(t *testing.T) {
	existing := &domain.Appointment{
		ID:         50,
		ActivityID: 2,
		StartTime:  monday.Add(10 * time.Hour),
		EndTime:    monday.Add(11 * time.Hour),
		Status:     domain.StatusConfirmed,
	}
	repo := newMockAppointmentRepo(existing)
	uc := newTestUseCase(repo, mondaySchedule(), testCatalogActivity(), monday.AddDate(0, 0, -1), false)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotConflict)
}

func TestExecute_CancelledDoesNotBlock(t *testing.T) {
	cancelled := &domain.Appointment{
		ID:         50,
		ActivityID: 1,
		StartTime:  monday.Add(10 * time.Hour),
		EndTime:    monday.Add(11 * time.Hour),
		Status:     domain.StatusCancelled,
	}
	repo := newMockAppointmentRepo(cancelled)
	uc := newTestUseCase(repo, mondaySchedule(), testCatalogActivity(), monday.AddDate(0, 0, -1), false)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

// Гонка за один слот: из двух конкурентных запросов побеждает ровно один,
// проигравший получает ErrSlotConflict
func TestExecute_ConcurrentRequestsSingleWinner(t *testing.T) {
	repo := newMockAppointmentRepo()
	uc := newTestUseCase(repo, mondaySchedule(), testCatalogActivity(), monday.AddDate(0, 0, -1), false)

	const attempts = 2
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrSlotConflict, fmt.Sprintf("unexpected error: %v", err))
		}
	}
	assert.Equal(t, 1, winners)
}
