package get_available_days

import "errors"

var (
	// ErrActivityNotFound возвращается, когда услуга не найдена в каталоге
	ErrActivityNotFound = errors.New("activity not found")

	// ErrActivityInactive возвращается, когда услуга отключена и не бронируется
	ErrActivityInactive = errors.New("activity is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
