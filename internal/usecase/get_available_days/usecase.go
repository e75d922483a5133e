package get_available_days

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

// UseCase use case для сводки доступности на недельное окно
// Окно - 7 подряд идущих дней начиная с запрошенной даты,
// без привязки к началу календарной недели
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

// Execute выполняет use case сводки доступности недели
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDays: activity=%d, weekStart=%s",
		req.ActivityID, req.WeekStart.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableDays: validation failed: %v", err)
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
			uc.logger.Error("GetAvailableDays: failed to get schedule: %v", err)
			return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
	}

	// 5. Одним запросом получаем занятые записи на все 7 дней окна
	weekStart := startOfDay(req.WeekStart)
	weekEnd := weekStart.AddDate(0, 0, domain.DaysPerWeek)
	occupying, err := uc.appointmentRepo.GetOccupyingInRange(ctx, weekStart, weekEnd)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Группируем записи по локальной дате начала
	occupyingByDate := make(map[string][]*domain.Appointment)
	for _, appt := range occupying {
		key := appt.StartTime.In(weekStart.Location()).Format(domain.DateFormat)
		occupyingByDate[key] = append(occupyingByDate[key], appt)
	}

	// 7. Строим сводку тем же генератором, что и подневная выдача
	days, err := slotgen.SummarizeWeek(weekStart, activity, schedule, occupyingByDate, now)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to summarize week: %v", err)
		return nil, fmt.Errorf("%w: failed to summarize week: %v", ErrInternal, err)
	}

	resp := &Response{
		ActivityID: req.ActivityID,
		Days:       make([]Day, 0, domain.DaysPerWeek),
	}
	for i := 0; i < domain.DaysPerWeek; i++ {
		resp.Days = append(resp.Days, Day{
			Date:      weekStart.AddDate(0, 0, i).Format(domain.DateFormat),
			Available: days[i],
		})
	}

	uc.logger.Info("GetAvailableDays: summarized week for activity=%d starting %s",
		req.ActivityID, weekStart.Format(domain.DateFormat))

	return resp, nil
}

// getActiveActivity получает услугу из каталога и проверяет, что она активна
func (uc *UseCase) getActiveActivity(ctx context.Context, activityID int64) (*domain.Activity, error) {
	activity, err := uc.catalogClient.GetActivity(ctx, activityID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrActivityNotFound) {
			uc.logger.Warn("GetAvailableDays: activity id=%d not found", activityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("GetAvailableDays: failed to get activity id=%d: %v", activityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	if !activity.IsActive {
		uc.logger.Warn("GetAvailableDays: activity id=%d is inactive", activityID)
		return nil, ErrActivityInactive
	}

	return activity.ToDomain(), nil
}

// startOfDay обнуляет время, сохраняя дату и зону
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
