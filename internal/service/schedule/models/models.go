package models

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модели

// WeeklySlotRequest интервал недельного шаблона в запросе
type WeeklySlotRequest struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 - воскресенье ... 6 - суббота
	StartTime string `json:"startTime"` // "HH:MM"
	EndTime   string `json:"endTime"`   // "HH:MM"
}

// ExceptionRequest дата закрытия в запросе
type ExceptionRequest struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Reason string `json:"reason,omitempty"`
}

// ReplaceScheduleRequest запрос на полную замену расписания
type ReplaceScheduleRequest struct {
	WeeklySlots []WeeklySlotRequest `json:"weeklySlots"`
	Exceptions  []ExceptionRequest  `json:"exceptions"`
}

// ToDomain конвертирует request в доменную модель
// Валидация выполняется на уровне сервиса до вызова конвертации
func (r *ReplaceScheduleRequest) ToDomain() *domain.Schedule {
	schedule := domain.NewDefaultSchedule()

	for _, ws := range r.WeeklySlots {
		schedule.WeeklySlots = append(schedule.WeeklySlots, domain.WeeklySlot{
			DayOfWeek: ws.DayOfWeek,
			StartTime: types.TimeString(ws.StartTime),
			EndTime:   types.TimeString(ws.EndTime),
		})
	}

	for _, e := range r.Exceptions {
		schedule.Exceptions = append(schedule.Exceptions, domain.ScheduleException{
			Date:   e.Date,
			Reason: e.Reason,
		})
	}

	return schedule
}

// Response модели

// WeeklySlotResponse интервал недельного шаблона в ответе
type WeeklySlotResponse struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// ExceptionResponse дата закрытия в ответе
type ExceptionResponse struct {
	Date   string `json:"date"`
	Reason string `json:"reason,omitempty"`
}

// ScheduleResponse ответ с расписанием
type ScheduleResponse struct {
	WeeklySlots []WeeklySlotResponse `json:"weeklySlots"`
	Exceptions  []ExceptionResponse  `json:"exceptions"`
	CreatedAt   *time.Time           `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time           `json:"updatedAt,omitempty"`
}

// FromDomainSchedule конвертирует доменную модель в DTO
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	if s == nil {
		return nil
	}

	resp := &ScheduleResponse{
		WeeklySlots: make([]WeeklySlotResponse, 0, len(s.WeeklySlots)),
		Exceptions:  make([]ExceptionResponse, 0, len(s.Exceptions)),
	}

	for _, ws := range s.WeeklySlots {
		resp.WeeklySlots = append(resp.WeeklySlots, WeeklySlotResponse{
			DayOfWeek: ws.DayOfWeek,
			StartTime: ws.StartTime.String(),
			EndTime:   ws.EndTime.String(),
		})
	}

	for _, e := range s.Exceptions {
		resp.Exceptions = append(resp.Exceptions, ExceptionResponse{
			Date:   e.Date,
			Reason: e.Reason,
		})
	}

	// Нулевые метки времени не отдаем: расписание еще не сохранялось
	if !s.CreatedAt.IsZero() {
		createdAt := s.CreatedAt
		resp.CreatedAt = &createdAt
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
