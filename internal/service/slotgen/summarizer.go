package slotgen

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// SummarizeWeek возвращает по одному флагу на каждый из 7 дней начиная с weekStart
// Флаг true тогда и только тогда, когда GenerateSlots для этого дня непуст
//
// Календарь использует сводку, чтобы подсветить дни без вычисления полных
// списков слотов. Сводка строится тем же генератором и не может разойтись
// с подневной выдачей
func SummarizeWeek(
	weekStart time.Time,
	activity *domain.Activity,
	schedule *domain.Schedule,
	occupyingByDate map[string][]*domain.Appointment,
	now time.Time,
) ([domain.DaysPerWeek]bool, error) {
	var days [domain.DaysPerWeek]bool

	for i := 0; i < domain.DaysPerWeek; i++ {
		date := weekStart.AddDate(0, 0, i)
		occupying := occupyingByDate[date.Format(domain.DateFormat)]

		slots, err := GenerateSlots(date, activity, schedule, occupying, now)
		if err != nil {
			return days, err
		}
		days[i] = len(slots) > 0
	}

	return days, nil
}
