package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Service сервис для работы с расписанием доступности
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Get возвращает текущее расписание
// Если расписание еще не сохранялось, возвращает пустое (нулевая доступность)
func (s *Service) Get(ctx context.Context) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule")

	schedule, err := s.scheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("Get: no schedule saved yet, returning empty default")
			return models.FromDomainSchedule(domain.NewDefaultSchedule()), nil
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Get: successfully fetched schedule, %d weekly slots, %d exceptions",
		len(schedule.WeeklySlots), len(schedule.Exceptions))
	return models.FromDomainSchedule(schedule), nil
}

// Replace полностью заменяет расписание
// Принимается только целиком валидный документ: при любой ошибке валидации
// сохраненное расписание остается нетронутым
func (s *Service) Replace(ctx context.Context, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Replace: replacing schedule, %d weekly slots, %d exceptions",
		len(req.WeeklySlots), len(req.Exceptions))

	if err := s.validateWeeklySlots(req.WeeklySlots); err != nil {
		s.logger.Warn("Replace: weekly slots validation failed: %v", err)
		return nil, err
	}

	if err := s.validateExceptions(req.Exceptions); err != nil {
		s.logger.Warn("Replace: exceptions validation failed: %v", err)
		return nil, err
	}

	schedule, err := s.scheduleRepo.Replace(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Replace: repository error: %v", err)
		return nil, fmt.Errorf("%w: Replace - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Replace: successfully replaced schedule")
	return models.FromDomainSchedule(schedule), nil
}

// validateWeeklySlots проверяет интервалы недельного шаблона:
// день недели 0-6, валидные времена, начало строго раньше конца,
// интервалы одного дня не пересекаются (соприкасаться концами можно)
func (s *Service) validateWeeklySlots(slots []models.WeeklySlotRequest) error {
	type minuteRange struct {
		start int
		end   int
	}
	byDay := make(map[int][]minuteRange)

	for _, slot := range slots {
		if slot.DayOfWeek < domain.MinDayOfWeek || slot.DayOfWeek > domain.MaxDayOfWeek {
			return fmt.Errorf("%w: dayOfWeek=%d", ErrInvalidDayOfWeek, slot.DayOfWeek)
		}

		startMin, err := types.TimeString(slot.StartTime).Minutes()
		if err != nil {
			return fmt.Errorf("%w: startTime=%q: %v", ErrInvalidTimeRange, slot.StartTime, err)
		}
		endMin, err := types.TimeString(slot.EndTime).Minutes()
		if err != nil {
			return fmt.Errorf("%w: endTime=%q: %v", ErrInvalidTimeRange, slot.EndTime, err)
		}

		if startMin >= endMin {
			return fmt.Errorf("%w: start %q is not before end %q", ErrInvalidTimeRange, slot.StartTime, slot.EndTime)
		}

		byDay[slot.DayOfWeek] = append(byDay[slot.DayOfWeek], minuteRange{start: startMin, end: endMin})
	}

	for day, ranges := range byDay {
		sort.Slice(ranges, func(i, j int) bool {
			return ranges[i].start < ranges[j].start
		})
		for i := 1; i < len(ranges); i++ {
			if ranges[i].start < ranges[i-1].end {
				return fmt.Errorf("%w: dayOfWeek=%d", ErrOverlappingRanges, day)
			}
		}
	}

	return nil
}

// validateExceptions проверяет даты закрытия: формат YYYY-MM-DD,
// уникальность дат, длину причины
func (s *Service) validateExceptions(exceptions []models.ExceptionRequest) error {
	seen := make(map[string]struct{}, len(exceptions))

	for _, e := range exceptions {
		parsed, err := time.Parse(domain.DateFormat, e.Date)
		if err != nil || parsed.Format(domain.DateFormat) != e.Date {
			return fmt.Errorf("%w: date=%q", ErrInvalidExceptionDate, e.Date)
		}

		if _, ok := seen[e.Date]; ok {
			return fmt.Errorf("%w: date=%q", ErrDuplicateException, e.Date)
		}
		seen[e.Date] = struct{}{}

		if len(e.Reason) > domain.MaxExceptionReasonLength {
			return fmt.Errorf("%w: exception reason too long for date=%q", ErrInvalidInput, e.Date)
		}
	}

	return nil
}
