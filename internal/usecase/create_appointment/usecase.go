package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	scheduleRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedule"
	catalogClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-AppointmentService/internal/service/slotgen"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// UseCase use case для создания записи на услугу
type UseCase struct {
	appointmentRepo AppointmentRepository
	scheduleRepo    ScheduleRepository
	catalogClient   CatalogServiceClient
	txManager       TransactionManager
	autoConfirm     bool
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// autoConfirm управляет начальным статусом записи: confirmed либо pending
func NewUseCase(
	appointmentRepo AppointmentRepository,
	scheduleRepo ScheduleRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	autoConfirm bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		catalogClient:   catalogClient,
		txManager:       txManager,
		autoConfirm:     autoConfirm,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Использует сериализуемую транзакцию с блокировкой занятых записей дня,
// а частичный уникальный индекс по (activity_id, start_time) гарантирует
// единственного победителя даже при гонке за один слот
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: activity=%d, date=%s, time=%s",
		req.ActivityID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услугу из каталога
	activity, err := uc.getActiveActivity(ctx, req.ActivityID)
	if err != nil {
		return nil, err
	}

	// 4. Вычисляем моменты начала и конца записи
	startInstant, err := combineDateTime(req.Date, req.StartTime)
	if err != nil {
		uc.logger.Warn("CreateAppointment: invalid start time: %v", err)
		return nil, fmt.Errorf("%w: invalid start time: %v", ErrInvalidInput, err)
	}
	endInstant := startInstant.Add(activity.Duration())

	// 5. Проверяем окно предуведомления до каких-либо проверок доступности,
	// чтобы слишком ранняя попытка всегда отличалась от конфликта слота
	if startInstant.Before(now.Add(activity.NoticeWindow())) {
		uc.logger.Warn("CreateAppointment: too soon, start=%s, notice=%dh",
			startInstant.Format(time.RFC3339), activity.MinBookingNoticeHours)
		return nil, ErrTooSoon
	}

	var result *domain.Appointment

	// 6. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Получаем расписание; если еще не сохранялось - пустое
		schedule, err := uc.scheduleRepo.Get(txCtx)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				schedule = domain.NewDefaultSchedule()
			} else {
				uc.logger.Error("CreateAppointment: failed to get schedule: %v", err)
				return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
			}
		}

		// 6.2. Запрошенное время обязано совпадать с началом слота,
		// порожденного шаблоном и исключениями (занятость здесь не учитывается)
		dayStart := startOfDay(req.Date)
		templateSlots, err := slotgen.GenerateSlots(dayStart, activity, schedule, nil, now)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to generate slots: %v", err)
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}
		if !slotStartsAt(templateSlots, startInstant) {
			uc.logger.Warn("CreateAppointment: time %s is outside availability", req.StartTime)
			return ErrOutsideAvailability
		}

		// 6.3. Получаем занятые записи дня с блокировкой (FOR UPDATE)
		dayEnd := dayStart.AddDate(0, 0, 1)
		occupying, err := uc.appointmentRepo.GetOccupyingInRange(txCtx, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 6.4. Проверяем пересечение той же функцией, что и генератор слотов
		if slotgen.OverlapsAny(startInstant, endInstant, occupying) {
			uc.logger.Warn("CreateAppointment: slot %s is already taken", req.StartTime)
			return ErrSlotConflict
		}

		status := domain.StatusPending
		if uc.autoConfirm {
			status = domain.StatusConfirmed
		}

		// 6.5. Создаем запись с денормализацией данных услуги
		appointment := &domain.Appointment{
			ActivityID:      req.ActivityID,
			StartTime:       startInstant,
			EndTime:         endInstant,
			DurationMinutes: activity.DurationMinutes,
			Status:          status,
			ActivityName:    activity.Name,
			ActivityPrice:   activity.Price,
			ClientName:      req.ClientName,
			ClientEmail:     req.ClientEmail,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			// Конкурентная запись успела занять слот между проверкой и вставкой
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateAppointment: slot %s taken concurrently", req.StartTime)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, status=%s",
		result.ID, result.Status)

	return &Response{
		ID:              result.ID,
		ActivityID:      result.ActivityID,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		ActivityName:    result.ActivityName,
		ActivityPrice:   result.ActivityPrice,
		ClientName:      result.ClientName,
		ClientEmail:     result.ClientEmail,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// getActiveActivity получает услугу из каталога и проверяет, что она активна
func (uc *UseCase) getActiveActivity(ctx context.Context, activityID int64) (*domain.Activity, error) {
	activity, err := uc.catalogClient.GetActivity(ctx, activityID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrActivityNotFound) {
			uc.logger.Warn("CreateAppointment: activity id=%d not found", activityID)
			return nil, ErrActivityNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get activity id=%d: %v", activityID, err)
		return nil, fmt.Errorf("%w: failed to get activity: %v", ErrInternal, err)
	}

	if !activity.IsActive {
		uc.logger.Warn("CreateAppointment: activity id=%d is inactive", activityID)
		return nil, ErrActivityInactive
	}

	return activity.ToDomain(), nil
}

// combineDateTime собирает момент времени из даты и времени суток в зоне даты
func combineDateTime(date time.Time, t types.TimeString) (time.Time, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	day := startOfDay(date)
	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// slotStartsAt проверяет, что среди слотов есть слот с данным началом
func slotStartsAt(slots []domain.Slot, start time.Time) bool {
	for _, s := range slots {
		if s.StartTime.Equal(start) {
			return true
		}
	}
	return false
}

// startOfDay обнуляет время, сохраняя дату и зону
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
