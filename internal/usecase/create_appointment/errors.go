package create_appointment

import "errors"

var (
	// ErrActivityNotFound возвращается, когда услуга не найдена в каталоге
	ErrActivityNotFound = errors.New("create_appointment: activity not found")

	// ErrActivityInactive возвращается, когда услуга отключена и не бронируется
	ErrActivityInactive = errors.New("create_appointment: activity is inactive")

	// ErrTooSoon возвращается, когда начало записи нарушает окно предуведомления услуги
	ErrTooSoon = errors.New("create_appointment: too soon to book this slot")

	// ErrOutsideAvailability возвращается, когда запрошенное время не совпадает
	// ни с одним слотом, порожденным расписанием (шаблон и исключения)
	ErrOutsideAvailability = errors.New("create_appointment: time is outside availability")

	// ErrSlotConflict возвращается, когда слот уже занят другой записью
	ErrSlotConflict = errors.New("create_appointment: slot conflict")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
