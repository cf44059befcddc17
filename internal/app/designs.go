package router

import (
	"net/http"

	"github.com/Renal37/archmarket/internal/middlewares"
	"github.com/Renal37/archmarket/internal/models"
	"github.com/go-chi/chi/v5"
)

// CreateDesign добавляет дизайн в каталог.
func CreateDesign(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.NewDesign](w, r)
	if !ok {
		return
	}

	designService := middlewares.GetServiceFromContext[models.DesignService](w, r, middlewares.DesignServiceKey)
	if designService == nil {
		return
	}

	if !validateRequest(w, r, data) {
		return
	}

	design, err := (*designService).CreateDesign(r.Context(), data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusCreated, design)
}

// GetDesign возвращает карточку дизайна.
func GetDesign(w http.ResponseWriter, r *http.Request) {
	designService := middlewares.GetServiceFromContext[models.DesignService](w, r, middlewares.DesignServiceKey)
	if designService == nil {
		return
	}

	design, err := (*designService).GetDesign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, design)
}

// UpdateDesignStatus публикует, снимает с публикации или архивирует дизайн.
func UpdateDesignStatus(w http.ResponseWriter, r *http.Request) {
	data, ok := middlewares.GetParsedJSONData[models.DesignStatusUpdate](w, r)
	if !ok {
		return
	}

	designService := middlewares.GetServiceFromContext[models.DesignService](w, r, middlewares.DesignServiceKey)
	if designService == nil {
		return
	}

	if !validateRequest(w, r, data) {
		return
	}

	design, err := (*designService).UpdateDesignStatus(r.Context(), chi.URLParam(r, "id"), data.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middlewares.EncodeJSONResponse(w, http.StatusOK, design)
}
