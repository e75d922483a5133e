package schedule

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
)

// scheduleRowID расписание - singleton-агрегат: ровно одна строка на развертывание
const scheduleRowID = 1

// Repository репозиторий расписания доступности
// Недельный шаблон и исключения хранятся JSONB-документами в единственной строке
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает сохраненное расписание
// Если расписание еще не сохранялось, возвращает ErrScheduleNotFound -
// дефолт (пустое расписание) подставляет вызывающий слой
func (r *Repository) Get(ctx context.Context) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"weekly_slots",
		"exceptions",
		"created_at",
		"updated_at",
	).
		From("schedule").
		Where(squirrel.Eq{"id": scheduleRowID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var weeklyRaw, exceptionsRaw []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&weeklyRaw,
		&exceptionsRaw,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan schedule: %v", ErrScanRow, err)
	}

	schedule := domain.NewDefaultSchedule()
	if err := json.Unmarshal(weeklyRaw, &schedule.WeeklySlots); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal weekly slots: %v", ErrScanRow, err)
	}
	if err := json.Unmarshal(exceptionsRaw, &schedule.Exceptions); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal exceptions: %v", ErrScanRow, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// Replace атомарно заменяет расписание целиком (upsert единственной строки)
// Частичных обновлений нет: вызывающий всегда передает полный документ,
// поэтому на самом расписании невозможны lost-update гонки между полями
func (r *Repository) Replace(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	weeklyRaw, err := json.Marshal(schedule.WeeklySlots)
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - marshal weekly slots: %v", ErrMarshal, err)
	}
	exceptionsRaw, err := json.Marshal(schedule.Exceptions)
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - marshal exceptions: %v", ErrMarshal, err)
	}

	query, args, err := psqlbuilder.Insert("schedule").
		Columns("id", "weekly_slots", "exceptions").
		Values(scheduleRowID, weeklyRaw, exceptionsRaw).
		Suffix(`ON CONFLICT (id) DO UPDATE
			SET weekly_slots = EXCLUDED.weekly_slots,
			    exceptions = EXCLUDED.exceptions,
			    updated_at = NOW()`).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - execute upsert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}
