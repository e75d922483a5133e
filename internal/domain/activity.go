package domain

import "time"

// Activity read-модель услуги из каталога
// Каталог услуг - внешний сервис; здесь только поля, влияющие на доступность
type Activity struct {
	ID                    int64
	Name                  string
	Price                 *float64
	Color                 string
	DurationMinutes       int
	MinBookingNoticeHours int
	IsActive              bool
}

// NoticeWindow возвращает минимальный интервал между "сейчас" и началом слота
func (a *Activity) NoticeWindow() time.Duration {
	return time.Duration(a.MinBookingNoticeHours) * time.Hour
}

// Duration возвращает длительность услуги
func (a *Activity) Duration() time.Duration {
	return time.Duration(a.DurationMinutes) * time.Minute
}
