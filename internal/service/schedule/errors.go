package schedule

import "errors"

var (
	// ErrInvalidDayOfWeek возвращается при дне недели вне диапазона 0-6
	ErrInvalidDayOfWeek = errors.New("invalid day of week")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrOverlappingRanges возвращается, когда диапазоны одного дня пересекаются
	ErrOverlappingRanges = errors.New("overlapping time ranges")

	// ErrInvalidExceptionDate возвращается при некорректной дате исключения
	ErrInvalidExceptionDate = errors.New("invalid exception date")

	// ErrDuplicateException возвращается при повторяющейся дате исключения
	ErrDuplicateException = errors.New("duplicate exception date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
