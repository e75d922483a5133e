package get_available_days

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	getAvailableDays "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_days"
)

const (
	msgInvalidActivityID  = "некорректный ID услуги"
	msgMissingWeekStart   = "дата начала недели обязательна"
	msgInvalidWeekStart   = "некорректный формат даты начала недели, ожидается YYYY-MM-DD"
	msgActivityNotFound   = "услуга не найдена"
	msgActivityInactive   = "услуга недоступна для записи"
	msgInvalidRequestData = "некорректные параметры запроса"
)

type Handler struct {
	useCase  GetAvailableDaysUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/activities/{activityId}/available-days
// Query params: weekStart (required, YYYY-MM-DD) - первый день недельного окна
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	activityIDStr := vars["activityId"]
	activityID, err := strconv.ParseInt(activityIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /activities/{id}/available-days - Invalid activity ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidActivityID)
		return
	}

	weekStartStr := r.URL.Query().Get("weekStart")
	if weekStartStr == "" {
		h.logger.Warn("GET /activities/{id}/available-days - Missing weekStart")
		handlers.RespondBadRequest(w, msgMissingWeekStart)
		return
	}

	useCaseReq, err := ToUseCaseRequest(activityID, weekStartStr, h.location)
	if err != nil {
		h.logger.Warn("GET /activities/{id}/available-days - Invalid weekStart format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWeekStart)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrActivityNotFound):
			h.logger.Warn("GET /activities/{id}/available-days - Activity not found: activity_id=%d", activityID)
			handlers.RespondNotFound(w, msgActivityNotFound)

		case errors.Is(err, getAvailableDays.ErrActivityInactive):
			h.logger.Warn("GET /activities/{id}/available-days - Activity inactive: activity_id=%d", activityID)
			handlers.RespondNotFound(w, msgActivityInactive)

		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("GET /activities/{id}/available-days - Invalid input: activity_id=%d, error=%v", activityID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestData)

		default:
			h.logger.Error("GET /activities/{id}/available-days - Failed to get days: activity_id=%d, error=%v",
				activityID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /activities/{id}/available-days - Days retrieved successfully: activity_id=%d, week_start=%s",
		activityID, weekStartStr)
	handlers.RespondJSON(w, http.StatusOK, response)
}
