package handler

import (
	"net/http"

	"github.com/TechBirds21/hospital-web-hub/internal/usecase"
	"github.com/TechBirds21/hospital-web-hub/pkg/response"
)

// ModuleHandler serves the public marketing catalog.
type ModuleHandler struct {
	contentUsecase usecase.ContentUsecase
}

func NewModuleHandler(contentUsecase usecase.ContentUsecase) *ModuleHandler {
	return &ModuleHandler{contentUsecase: contentUsecase}
}

func (h *ModuleHandler) Preview(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.contentUsecase.ModulesPreview())
}

func (h *ModuleHandler) V1Features(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.contentUsecase.V1Features())
}
