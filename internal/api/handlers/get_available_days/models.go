package get_available_days

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableDays "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_days"
)

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	ActivityID int64          `json:"activityId"`
	Days       []AvailableDay `json:"days"`
}

// AvailableDay сводка доступности одного дня
type AvailableDay struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	days := make([]AvailableDay, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = AvailableDay{
			Date:      day.Date,
			Available: day.Available,
		}
	}

	return &AvailableDaysResponse{
		ActivityID: resp.ActivityID,
		Days:       days,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
// Дата интерпретируется в зоне сервиса
func ToUseCaseRequest(activityID int64, weekStartStr string, loc *time.Location) (*getAvailableDays.Request, error) {
	weekStart, err := time.ParseInLocation(domain.DateFormat, weekStartStr, loc)
	if err != nil {
		return nil, err
	}

	return &getAvailableDays.Request{
		ActivityID: activityID,
		WeekStart:  weekStart,
	}, nil
}
