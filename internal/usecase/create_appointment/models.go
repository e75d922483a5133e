package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ActivityID int64            // ID услуги
	Date       time.Time        // Дата записи (без времени, в зоне сервиса)
	StartTime  types.TimeString // Время начала, например "10:00"

	ClientName  string  // Имя клиента
	ClientEmail *string // Email клиента (опционально)
	Notes       *string // Комментарий клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	ActivityID      int64
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Status          string

	// Денормализованные данные услуги на момент создания
	ActivityName  string
	ActivityPrice *float64

	ClientName  string
	ClientEmail *string
	Notes       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
