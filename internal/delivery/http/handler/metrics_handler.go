package handler

import (
	"net/http"

	"github.com/TechBirds21/hospital-web-hub/internal/delivery/http/middleware"
	"github.com/TechBirds21/hospital-web-hub/internal/usecase"
	"github.com/TechBirds21/hospital-web-hub/pkg/response"

	"github.com/gorilla/mux"
)

type MetricsHandler struct {
	metricsUsecase usecase.MetricsUsecase
}

func NewMetricsHandler(metricsUsecase usecase.MetricsUsecase) *MetricsHandler {
	return &MetricsHandler{metricsUsecase: metricsUsecase}
}

// Overview always answers 200: rollup failures surface as zeroed values,
// never as an error status.
func (h *MetricsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	response.JSON(w, http.StatusOK, h.metricsUsecase.Overview(r.Context(), user))
}

// Dashboard returns role-shaped metrics for the role in the path.
func (h *MetricsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	dashboard, err := h.metricsUsecase.Dashboard(r.Context(), mux.Vars(r)["role"], user)
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard metrics")
		return
	}

	response.JSON(w, http.StatusOK, dashboard)
}
