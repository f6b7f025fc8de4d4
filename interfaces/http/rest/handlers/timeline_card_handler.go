package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"memoirbox-backend/application/services"
	"memoirbox-backend/pkg/common"
)

// TimelineCardHandler handles timeline card HTTP requests
type TimelineCardHandler struct {
	service *services.TimelineCardService
	logger  *zap.Logger
}

// NewTimelineCardHandler creates a new timeline card handler
func NewTimelineCardHandler(service *services.TimelineCardService, logger *zap.Logger) *TimelineCardHandler {
	return &TimelineCardHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/timeline-cards
func (h *TimelineCardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list timeline cards", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, cards)
}

// Create handles POST /api/timeline-cards
func (h *TimelineCardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTimelineCardInput
	if err := common.ParseJSONBody(w, r, &input, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	card, err := h.service.Create(r.Context(), input)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, card)
}

// Upload handles POST /api/timeline-cards/upload
func (h *TimelineCardHandler) Upload(w http.ResponseWriter, r *http.Request) {
	blob, contentType := readUpload(r, "image")
	result, err := h.service.UploadImage(r.Context(), blob, contentType)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}
