package http

import (
	"net/http"

	"github.com/planning-guru/attendance-backend-go/internal/domain/analytics"
	"github.com/planning-guru/attendance-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// Get implements AnalyticsHandler.
func (h *analyticsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.GetAnalytics(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
