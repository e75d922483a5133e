package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание еще не сохранялось
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrMarshal возвращается при ошибке сериализации документа расписания
	ErrMarshal = errors.New("schedule.repository: failed to marshal schedule document")
)
