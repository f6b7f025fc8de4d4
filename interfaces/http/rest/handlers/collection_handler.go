package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"memoirbox-backend/application/services"
	"memoirbox-backend/pkg/auth"
	"memoirbox-backend/pkg/common"
)

// CollectionHandler handles collection-related HTTP requests
type CollectionHandler struct {
	service *services.CollectionService
	logger  *zap.Logger
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(service *services.CollectionService, logger *zap.Logger) *CollectionHandler {
	return &CollectionHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/collections
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	collections, err := h.service.List(r.Context(), userCtx.UserID)
	if err != nil {
		h.logger.Error("failed to list collections",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, collections)
}

// Get handles GET /api/collections/{collectionID}
func (h *CollectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	collection, err := h.service.Get(r.Context(), collectionID, userCtx.UserID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, collection)
}

// Create handles POST /api/collections
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input services.CreateCollectionInput
	if err := common.ParseJSONBody(w, r, &input, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	collection, err := h.service.Create(r.Context(), userCtx.UserID, input)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, collection)
}

// Update handles PUT /api/collections/{collectionID}
func (h *CollectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input services.UpdateCollectionInput
	if err := common.ParseJSONBody(w, r, &input, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	collection, err := h.service.Update(r.Context(), collectionID, userCtx.UserID, input)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, collection)
}

// Delete handles DELETE /api/collections/{collectionID}
func (h *CollectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.Delete(r.Context(), collectionID, userCtx.UserID); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "Collection deleted successfully"})
}

// AddMemoryRequest is the body for POST /api/collections/{collectionID}/memories
type AddMemoryRequest struct {
	MemoryID string `json:"memoryId"`
}

// AddMemory handles POST /api/collections/{collectionID}/memories
func (h *CollectionHandler) AddMemory(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req AddMemoryRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	collection, err := h.service.AddMemory(r.Context(), collectionID, userCtx.UserID, req.MemoryID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, collection)
}

// RemoveMemory handles DELETE /api/collections/{collectionID}/memories/{memoryID}
func (h *CollectionHandler) RemoveMemory(w http.ResponseWriter, r *http.Request) {
	collectionID := chi.URLParam(r, "collectionID")
	memoryID := chi.URLParam(r, "memoryID")
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	collection, err := h.service.RemoveMemory(r.Context(), collectionID, userCtx.UserID, memoryID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, collection)
}
