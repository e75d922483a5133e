package catalogservice

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// Activity модель услуги из CatalogService
type Activity struct {
	ID                    int64    `json:"id"`
	Name                  string   `json:"name"`
	Price                 *float64 `json:"price"`
	Color                 string   `json:"color"`
	DurationMinutes       int      `json:"duration_minutes"`
	MinBookingNoticeHours int      `json:"min_booking_notice_hours"`
	IsActive              bool     `json:"is_active"`
}

// ToDomain конвертирует модель каталога в доменную
func (a *Activity) ToDomain() *domain.Activity {
	return &domain.Activity{
		ID:                    a.ID,
		Name:                  a.Name,
		Price:                 a.Price,
		Color:                 a.Color,
		DurationMinutes:       a.DurationMinutes,
		MinBookingNoticeHours: a.MinBookingNoticeHours,
		IsActive:              a.IsActive,
	}
}

// ErrorResponse модель ошибки от CatalogService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
