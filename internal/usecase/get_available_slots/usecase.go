package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	scheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
	catalogClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AppointmentService/internal/service/slotgen"
)

// UseCase use case для получения доступных слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalogClient   CatalogServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalogClient:   catalogClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: activity=%d, date=%s",
		req.ActivityID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу из каталога
	activity, err := uc.getActiveActivity(ctx, req.ActivityID)
	if err != nil {
		return nil, err
	}

	// 4. Получаем расписание; если еще не сохранялось - пустое (нулевая доступность)
	schedule, err := uc.scheduleRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			schedule = domain.NewDefaultSchedule()
		} else {
			uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
	}

	// 5. Получаем занятые записи на эту дату
	dayStart := startOfDay(req.Date)
	dayEnd := dayStart.AddDate(0, 0, 1)
	occupying, err := uc.appointmentRepo.GetOccupyingInRange(ctx, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты
	slots, err := slotgen.GenerateSlots(dayStart, activity, schedule, occupying, now)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for activity=%d, date=%s",
		len(slots), req.ActivityID, req.Date.Format(domain.DateFormat))

	return &Response{
		ActivityID: req.ActivityID,
		Date:       dayStart.Format(domain.DateFormat),
		Slots:      toResponseSlots(slots, activity.DurationMinutes),
	}, nil
}

// getActiveActivity получает услугу из каталога и проверяет, что она активна
func (uc *UseCase) getActiveActivity(ctx context.Context, activityID int64) (*domain.Activity, error) {
	activity, err := uc.catalogClient.GetActivity(ctx, activityID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrActivityNotFound) {
			uc.logger.Warn("GetAvailableSlots: activity id=%d not found", activityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get activity id=%d: %v", activityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	if !activity.IsActive {
		uc.logger.Warn("GetAvailableSlots: activity id=%d is inactive", activityID)
		return nil, ErrActivityInactive
	}

	return activity.ToDomain(), nil
}

// startOfDay обнуляет время, сохраняя дату и зону
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// toResponseSlots конвертирует доменные слоты в DTO
func toResponseSlots(slots []domain.Slot, durationMinutes int) []Slot {
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, Slot{
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DurationMinutes: durationMinutes,
		})
	}
	return result
}
