package get_available_days

import (
	"time"
)

// Request модель запроса на сводку доступности недели
type Request struct {
	ActivityID int64     // ID услуги
	WeekStart  time.Time // Первый день недельного окна (без времени, в зоне сервиса)
}

// Response модель ответа со сводкой по 7 дням начиная с WeekStart
type Response struct {
	ActivityID int64 // ID услуги
	Days       []Day // Ровно 7 элементов в календарном порядке
}

// Day сводка доступности одного дня
type Day struct {
	Date      string // Дата в формате YYYY-MM-DD
	Available bool   // true, если на дату есть хотя бы один слот
}
