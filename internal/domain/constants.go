package domain

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DaysPerWeek длина окна недельной сводки доступности
const DaysPerWeek = 7

// Границы дня недели в недельном шаблоне
// Нумерация совпадает с time.Weekday: 0 - воскресенье, 6 - суббота
const (
	MinDayOfWeek = 0
	MaxDayOfWeek = 6
)

// Ограничения входных данных
const (
	MaxClientNameLength         = 200
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxExceptionReasonLength    = 500
)
