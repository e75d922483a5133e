package slotgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// 2025-06-02 - понедельник
var (
	monday     = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	nextMonday = monday.AddDate(0, 0, 7)
)

func testActivity(durationMinutes, noticeHours int) *domain.Activity {
	return &domain.Activity{
		ID:                    1,
		Name:                  "Стрижка",
		DurationMinutes:       durationMinutes,
		MinBookingNoticeHours: noticeHours,
		IsActive:              true,
	}
}

// mondaySchedule шаблон: понедельник 09:00-11:00
func mondaySchedule() *domain.Schedule {
	return &domain.Schedule{
		WeeklySlots: []domain.WeeklySlot{
			{DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "11:00"},
		},
		Exceptions: []domain.ScheduleException{},
	}
}

func appointmentAt(start time.Time, durationMinutes int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              100,
		ActivityID:      1,
		StartTime:       start,
		EndTime:         start.Add(time.Duration(durationMinutes) * time.Minute),
		DurationMinutes: durationMinutes,
		Status:          status,
	}
}

func slotTimes(t *testing.T, slots []domain.Slot) []string {
	t.Helper()
	result := make([]string, 0, len(slots))
	for _, s := range slots {
		result = append(result, s.StartTime.Format("15:04")+"-"+s.EndTime.Format("15:04"))
	}
	return result
}

func TestGenerateSlots_BasicTemplate(t *testing.T) {
	now := monday.AddDate(0, 0, -3)

	slots, err := GenerateSlots(monday, testActivity(60, 0), mondaySchedule(), nil, now)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00"}, slotTimes(t, slots))
}

func TestGenerateSlots_ExistingAppointmentRemovesSlot(t *testing.T) {
	now := monday.AddDate(0, 0, -3)
	occupying := []*domain.Appointment{
		appointmentAt(monday.Add(9*time.Hour), 60, domain.StatusConfirmed),
	}

	slots, err := GenerateSlots(monday, testActivity(60, 0), mondaySchedule(), occupying, now)

	require.NoError(t, err)
	assert.Equal(t, []string{"10:00-11:00"}, slotTimes(t, slots))
}

func TestGenerateSlots_CancelledAppointmentDoesNotBlock(t *testing.T) {
	now := monday.AddDate(0, 0, -3)
	occupying := []*domain.Appointment{
		appointmentAt(monday.Add(9*time.Hour), 60, domain.StatusCancelled),
	}

	slots, err := GenerateSlots(monday, testActivity(60, 0), mondaySchedule(), occupying, now)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00"}, slotTimes(t, slots))
}

func TestGenerateSlots_ExceptionClosesDay(t *testing.T) {
	now := monday.AddDate(0, 0, -3)
	schedule := mondaySchedule()
	schedule.Exceptions = []domain.ScheduleException{
		{Date: monday.Format(domain.DateFormat), Reason: "инвентаризация"},
	}

	slots, err := GenerateSlots(monday, testActivity(60, 0), schedule, nil, now)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_NoticeWindowExcludesSameDay(t *testing.T) {
	// Сейчас понедельник 08:00, предуведомление 24 часа:
	// слоты 09:00 и 10:00 этого понедельника попадают в окно и исключаются
	now := monday.Add(8 * time.Hour)
	activity := testActivity(60, 24)

	slots, err := GenerateSlots(monday, activity, mondaySchedule(), nil, now)
	require.NoError(t, err)
	assert.Empty(t, slots)

	// Следующий понедельник не затронут
	slots, err = GenerateSlots(nextMonday, activity, mondaySchedule(), nil, now)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00"}, slotTimes(t, slots))
}

func TestGenerateSlots_SlotAtExactNoticeBoundary(t *testing.T) {
	// Начало слота ровно на границе окна предуведомления допустимо
	now := monday.Add(8 * time.Hour) // 08:00, предуведомление 1 час -> граница 09:00
	activity := testActivity(60, 1)

	slots, err := GenerateSlots(monday, activity, mondaySchedule(), nil, now)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00"}, slotTimes(t, slots))
}

func TestGenerateSlots_DurationLongerThanRange(t *testing.T) {
	now := monday.AddDate(0, 0, -3)

	slots, err := GenerateSlots(monday, testActivity(180, 0), mondaySchedule(), nil, now)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_PartialRangeTailDropped(t *testing.T) {
	// Интервал 09:00-11:30 при шаге 60 минут: хвост 11:00-11:30 не помещается
	now := monday.AddDate(0, 0, -3)
	schedule := &domain.Schedule{
		WeeklySlots: []domain.WeeklySlot{
			{DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "11:30"},
		},
	}

	slots, err := GenerateSlots(monday, testActivity(60, 0), schedule, nil, now)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00"}, slotTimes(t, slots))
}

func TestGenerateSlots_MultipleRangesSortedAscending(t *testing.T) {
	// Интервалы хранятся в произвольном порядке, выдача упорядочена по времени
	now := monday.AddDate(0, 0, -3)
	schedule := &domain.Schedule{
		WeeklySlots: []domain.WeeklySlot{
			{DayOfWeek: int(time.Monday), StartTime: "14:00", EndTime: "16:00"},
			{DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "11:00"},
		},
	}

	slots, err := GenerateSlots(monday, testActivity(60, 0), schedule, nil, now)

	require.NoError(t, err)
	assert.Equal(t,
		[]string{"09:00-10:00", "10:00-11:00", "14:00-15:00", "15:00-16:00"},
		slotTimes(t, slots))
}

func TestGenerateSlots_BoundaryTouchingAppointmentDoesNotBlock(t *testing.T) {
	// Запись 08:00-09:00 граничит со слотом 09:00-10:00 - это не пересечение
	now := monday.AddDate(0, 0, -3)
	occupying := []*domain.Appointment{
		appointmentAt(monday.Add(8*time.Hour), 60, domain.StatusConfirmed),
	}

	slots, err := GenerateSlots(monday, testActivity(60, 0), mondaySchedule(), occupying, now)

	require.NoError(t, err)
	assert.Equal(t, []string{"09:00-10:00", "10:00-11:00"}, slotTimes(t, slots))
}

func TestGenerateSlots_OtherWeekdayGivesNoSlots(t *testing.T) {
	now := monday.AddDate(0, 0, -3)
	tuesday := monday.AddDate(0, 0, 1)

	slots, err := GenerateSlots(tuesday, testActivity(60, 0), mondaySchedule(), nil, now)

	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_NoOverlapInvariant(t *testing.T) {
	// Любые два выданных слота не пересекаются между собой
	// и ни один не пересекается с занятыми записями
	now := monday.AddDate(0, 0, -3)
	schedule := &domain.Schedule{
		WeeklySlots: []domain.WeeklySlot{
			{DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "13:00"},
			{DayOfWeek: int(time.Monday), StartTime: "14:00", EndTime: "18:00"},
		},
	}
	occupying := []*domain.Appointment{
		appointmentAt(monday.Add(10*time.Hour), 60, domain.StatusConfirmed),
		appointmentAt(monday.Add(15*time.Hour+30*time.Minute), 60, domain.StatusPending),
	}

	slots, err := GenerateSlots(monday, testActivity(60, 0), schedule, occupying, now)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	for i := range slots {
		for j := i + 1; j < len(slots); j++ {
			overlap := slots[i].StartTime.Before(slots[j].EndTime) &&
				slots[j].StartTime.Before(slots[i].EndTime)
			assert.False(t, overlap, "слоты %d и %d пересекаются", i, j)
		}
		assert.False(t, OverlapsAny(slots[i].StartTime, slots[i].EndTime, occupying),
			"слот %d пересекается с занятой записью", i)
	}
}

func TestOverlapsAny_HalfOpenSemantics(t *testing.T) {
	base := monday.Add(11 * time.Hour)
	occupying := []*domain.Appointment{
		appointmentAt(base.Add(-40*time.Minute), 60, domain.StatusConfirmed), // 10:20-11:20
	}

	// Слот 11:30-12:00 не пересекается с записью 10:20-11:20
	assert.False(t, OverlapsAny(base.Add(30*time.Minute), base.Add(60*time.Minute), occupying))

	// Слот 11:00-11:30 пересекается (общий отрезок 11:00-11:20)
	assert.True(t, OverlapsAny(base, base.Add(30*time.Minute), occupying))

	// Слот, начинающийся ровно в конце записи, не пересекается
	assert.False(t, OverlapsAny(base.Add(20*time.Minute), base.Add(80*time.Minute), occupying))
}
