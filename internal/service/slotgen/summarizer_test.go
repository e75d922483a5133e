package slotgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func TestSummarizeWeek_MatchesGenerator(t *testing.T) {
	// Сводка недели обязана совпадать с подневными вызовами генератора
	now := monday.AddDate(0, 0, -3)
	activity := testActivity(60, 0)
	schedule := &domain.Schedule{
		WeeklySlots: []domain.WeeklySlot{
			{DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "11:00"},
			{DayOfWeek: int(time.Wednesday), StartTime: "10:00", EndTime: "12:00"},
			{DayOfWeek: int(time.Friday), StartTime: "09:00", EndTime: "09:30"}, // короче услуги
		},
		Exceptions: []domain.ScheduleException{
			{Date: monday.AddDate(0, 0, 2).Format(domain.DateFormat), Reason: "выходной"}, // среда закрыта
		},
	}
	occupyingByDate := map[string][]*domain.Appointment{
		monday.Format(domain.DateFormat): {
			appointmentAt(monday.Add(9*time.Hour), 60, domain.StatusConfirmed),
			appointmentAt(monday.Add(10*time.Hour), 60, domain.StatusConfirmed),
		},
	}

	days, err := SummarizeWeek(monday, activity, schedule, occupyingByDate, now)
	require.NoError(t, err)

	for i := 0; i < domain.DaysPerWeek; i++ {
		date := monday.AddDate(0, 0, i)
		slots, genErr := GenerateSlots(date, activity, schedule, occupyingByDate[date.Format(domain.DateFormat)], now)
		require.NoError(t, genErr)
		assert.Equal(t, len(slots) > 0, days[i], "день %d: сводка разошлась с генератором", i)
	}

	// Понедельник занят целиком, среда закрыта исключением,
	// пятничный интервал короче услуги - доступных дней нет
	assert.Equal(t, [domain.DaysPerWeek]bool{false, false, false, false, false, false, false}, days)
}

func TestSummarizeWeek_ReportsOpenDays(t *testing.T) {
	now := monday.AddDate(0, 0, -3)
	schedule := &domain.Schedule{
		WeeklySlots: []domain.WeeklySlot{
			{DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "11:00"},
			{DayOfWeek: int(time.Saturday), StartTime: "12:00", EndTime: "14:00"},
		},
	}

	days, err := SummarizeWeek(monday, testActivity(60, 0), schedule, nil, now)

	require.NoError(t, err)
	// Неделя начинается с понедельника: индекс 0 - понедельник, 5 - суббота
	assert.Equal(t, [domain.DaysPerWeek]bool{true, false, false, false, false, true, false}, days)
}

func TestSummarizeWeek_EmptyScheduleAllClosed(t *testing.T) {
	now := monday.AddDate(0, 0, -3)

	days, err := SummarizeWeek(monday, testActivity(60, 0), domain.NewDefaultSchedule(), nil, now)

	require.NoError(t, err)
	assert.Equal(t, [domain.DaysPerWeek]bool{}, days)
}
