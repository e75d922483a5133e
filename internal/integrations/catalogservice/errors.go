package catalogservice

import "errors"

var (
	// ErrActivityNotFound возвращается, когда услуга не существует в каталоге
	ErrActivityNotFound = errors.New("activity not found in catalog")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("catalogservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("catalogservice client: invalid response")
)
