package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// WeeklySlot интервал доступности в недельном шаблоне
// Интервал живет внутри одного календарного дня и не пересекает полночь
type WeeklySlot struct {
	DayOfWeek int              `json:"dayOfWeek"` // 0 - воскресенье ... 6 - суббота
	StartTime types.TimeString `json:"startTime"`
	EndTime   types.TimeString `json:"endTime"`
}

// ScheduleException дата полного закрытия поверх недельного шаблона
// Присутствие даты в списке означает нулевую доступность в этот день
type ScheduleException struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Reason string `json:"reason,omitempty"`
}

// Schedule расписание доступности - единственный агрегат на все развертывание
// Изменяется только целиком: полная замена документа, без частичных патчей
type Schedule struct {
	WeeklySlots []WeeklySlot
	Exceptions  []ScheduleException

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDefaultSchedule возвращает пустое расписание (нулевая доступность)
// Используется, пока администратор не сохранил свое расписание
func NewDefaultSchedule() *Schedule {
	return &Schedule{
		WeeklySlots: []WeeklySlot{},
		Exceptions:  []ScheduleException{},
	}
}

// SlotsForWeekday возвращает интервалы шаблона для дня недели
// Порядок хранения не гарантирован; интервалов может быть ноль и больше
func (s *Schedule) SlotsForWeekday(weekday time.Weekday) []WeeklySlot {
	result := make([]WeeklySlot, 0)
	for _, ws := range s.WeeklySlots {
		if ws.DayOfWeek == int(weekday) {
			result = append(result, ws)
		}
	}
	return result
}

// IsClosedOn проверяет, закрыта ли дата исключением
func (s *Schedule) IsClosedOn(date time.Time) bool {
	key := date.Format(DateFormat)
	for _, e := range s.Exceptions {
		if e.Date == key {
			return true
		}
	}
	return false
}
