package replace_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule"
	"github.com/m04kA/SMC-AppointmentService/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDayOfWeek     = "некорректный день недели, ожидается 0-6"
	msgInvalidTimeRange     = "некорректный временной интервал"
	msgOverlappingRanges    = "интервалы одного дня пересекаются"
	msgInvalidExceptionDate = "некорректная дата исключения, ожидается YYYY-MM-DD"
	msgDuplicateException   = "повторяющаяся дата исключения"
	msgInvalidRequestData   = "некорректные данные запроса"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule
// Расписание заменяется только целиком: частичных обновлений нет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ReplaceScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Replace(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidDayOfWeek):
			h.logger.Warn("PUT /schedule - Invalid day of week: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDayOfWeek)

		case errors.Is(err, schedule.ErrInvalidTimeRange):
			h.logger.Warn("PUT /schedule - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrOverlappingRanges):
			h.logger.Warn("PUT /schedule - Overlapping ranges: %v", err)
			handlers.RespondBadRequest(w, msgOverlappingRanges)

		case errors.Is(err, schedule.ErrInvalidExceptionDate):
			h.logger.Warn("PUT /schedule - Invalid exception date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExceptionDate)

		case errors.Is(err, schedule.ErrDuplicateException):
			h.logger.Warn("PUT /schedule - Duplicate exception: %v", err)
			handlers.RespondBadRequest(w, msgDuplicateException)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestData)

		default:
			h.logger.Error("PUT /schedule - Failed to replace schedule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule - Schedule replaced successfully: weekly_slots=%d, exceptions=%d",
		len(result.WeeklySlots), len(result.Exceptions))
	handlers.RespondJSON(w, http.StatusOK, result)
}
