package get_available_slots

import (
	"time"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ActivityID int64     // ID услуги
	Date       time.Time // Дата, на которую запрашиваются слоты (без времени, в зоне сервиса)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ActivityID int64  // ID услуги
	Date       string // Дата в формате YYYY-MM-DD
	Slots      []Slot // Упорядоченный список доступных слотов
}

// Slot модель бронируемого окна
type Slot struct {
	StartTime       time.Time // Момент начала слота
	EndTime         time.Time // Момент конца слота
	DurationMinutes int       // Длительность слота в минутах
}
