package domain

import "time"

// Slot бронируемое временное окно; вычисляется, не персистится
// Длительность окна всегда равна длительности услуги, окно целиком
// помещается в один интервал недельного шаблона
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
}
