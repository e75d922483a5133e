package slotgen

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// GenerateSlots строит упорядоченный список бронируемых окон на дату
// Чистая функция от снимков хранилищ: недельный шаблон с исключениями,
// занятые записи на эту дату и текущее время
//
// Сетка кандидатов фиксированная: шаг равен длительности самой услуги,
// поэтому услуги разной длительности дают независимо выровненные сетки
func GenerateSlots(
	date time.Time,
	activity *domain.Activity,
	schedule *domain.Schedule,
	occupying []*domain.Appointment,
	now time.Time,
) ([]domain.Slot, error) {
	// 1. Дата-исключение полностью закрывает день независимо от шаблона
	if schedule.IsClosedOn(date) {
		return []domain.Slot{}, nil
	}

	// 2. Интервалы шаблона для этого дня недели
	ranges := schedule.SlotsForWeekday(date.Weekday())

	// 3. Минимально допустимое начало с учетом окна предуведомления
	minStart := now.Add(activity.NoticeWindow())

	slots := make([]domain.Slot, 0)
	for _, r := range ranges {
		rangeSlots, err := walkRange(date, r, activity.DurationMinutes, minStart, occupying)
		if err != nil {
			return nil, err
		}
		slots = append(slots, rangeSlots...)
	}

	// Интервалы шаблона могут храниться в произвольном порядке
	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime.Before(slots[j].StartTime)
	})

	return slots, nil
}

// walkRange перебирает кандидатов внутри одного интервала шаблона
// Шаг равен длительности услуги; кандидат берется, только если целиком
// помещается в интервал. Услуга длиннее интервала дает ноль слотов
func walkRange(
	date time.Time,
	r domain.WeeklySlot,
	durationMinutes int,
	minStart time.Time,
	occupying []*domain.Appointment,
) ([]domain.Slot, error) {
	startMin, err := r.StartTime.Minutes()
	if err != nil {
		return nil, err
	}
	endMin, err := r.EndTime.Minutes()
	if err != nil {
		return nil, err
	}

	slots := make([]domain.Slot, 0)
	for m := startMin; m+durationMinutes <= endMin; m += durationMinutes {
		start := at(date, m)
		end := at(date, m+durationMinutes)

		// Кандидаты внутри окна предуведомления недоступны
		if start.Before(minStart) {
			continue
		}

		// Кандидаты, пересекающиеся с занятыми записями, недоступны
		if OverlapsAny(start, end, occupying) {
			continue
		}

		slots = append(slots, domain.Slot{StartTime: start, EndTime: end})
	}

	return slots, nil
}

// OverlapsAny проверяет пересечение окна [start, end) с занятыми записями
// Интервалы полуоткрытые: записи, граничащие с окном, его не блокируют
//
// Та же проверка выполняется при создании записи - генератор и guard
// не должны расходиться в определении пересечения
func OverlapsAny(start, end time.Time, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		// Отмененные записи не занимают время в календаре
		if !appt.OccupiesCalendar() {
			continue
		}

		// Строгие неравенства: касание границами не считается пересечением
		if appt.StartTime.Before(end) && appt.EndTime.After(start) {
			return true
		}
	}
	return false
}

// at превращает минуты с начала суток в момент времени в зоне даты
func at(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), minutes/60, minutes%60, 0, 0, date.Location())
}
