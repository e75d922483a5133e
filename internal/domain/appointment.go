package domain

import "time"

// AppointmentStatus статус записи на услугу
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// OccupiesCalendar сообщает, занимает ли запись с таким статусом время в календаре
// Отмененная запись возвращает свой интервал в доступность
func (s AppointmentStatus) OccupiesCalendar() bool {
	return s != StatusCancelled
}

// Appointment запись клиента на услугу
// Интервал времени неизменен после создания; перенос моделируется как отмена и новая запись
type Appointment struct {
	ID         int64
	ActivityID int64

	StartTime       time.Time
	EndTime         time.Time // всегда StartTime + длительность услуги
	DurationMinutes int

	Status AppointmentStatus

	// Денормализованные данные услуги - история переживает правки каталога
	ActivityName  string
	ActivityPrice *float64

	// Данные клиента из формы бронирования
	ClientName  string
	ClientEmail *string
	Notes       *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesCalendar сообщает, блокирует ли запись пересекающиеся слоты
func (a *Appointment) OccupiesCalendar() bool {
	return a.Status.OccupiesCalendar()
}

// CanBeCancelled сообщает, можно ли отменить запись
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// IsCancelled сообщает, отменена ли запись
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// AppointmentsFilter фильтр для выборки записей за период
type AppointmentsFilter struct {
	From             *time.Time         // Начало периода (опционально)
	To               *time.Time         // Конец периода, не включается (опционально)
	Status           *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отмененные записи
}
