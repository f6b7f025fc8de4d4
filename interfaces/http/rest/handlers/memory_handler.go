package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"memoirbox-backend/application/services"
	"memoirbox-backend/pkg/auth"
	"memoirbox-backend/pkg/common"
	"memoirbox-backend/pkg/utils"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// MemoryHandler handles memory-related HTTP requests
type MemoryHandler struct {
	service *services.MemoryService
	logger  *zap.Logger
}

// NewMemoryHandler creates a new memory handler
func NewMemoryHandler(service *services.MemoryService, logger *zap.Logger) *MemoryHandler {
	return &MemoryHandler{
		service: service,
		logger:  logger,
	}
}

// List handles GET /api/memories
func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input services.ListMemoriesInput

	if raw := r.URL.Query().Get("startDate"); raw != "" {
		t, err := utils.ParseDateParam(raw)
		if err != nil {
			common.RespondError(w, http.StatusBadRequest, "Invalid startDate")
			return
		}
		input.StartDate = &t
	}
	if raw := r.URL.Query().Get("endDate"); raw != "" {
		t, err := utils.ParseDateParam(raw)
		if err != nil {
			common.RespondError(w, http.StatusBadRequest, "Invalid endDate")
			return
		}
		input.EndDate = &t
	}
	if raw := r.URL.Query().Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				input.Tags = append(input.Tags, tag)
			}
		}
	}

	memories, err := h.service.List(r.Context(), userCtx.UserID, input)
	if err != nil {
		h.logger.Error("failed to list memories",
			zap.String("userID", userCtx.UserID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, memories)
}

// ListPublic handles GET /api/memories/public
func (h *MemoryHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	memories, err := h.service.ListPublic(r.Context())
	if err != nil {
		h.logger.Error("failed to list public memories", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, memories)
}

// Get handles GET /api/memories/{memoryID}
func (h *MemoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	memoryID := chi.URLParam(r, "memoryID")
	if memoryID == "" {
		common.RespondError(w, http.StatusBadRequest, "Memory ID is required")
		return
	}

	memory, err := h.service.Get(r.Context(), memoryID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, memory)
}

// Create handles POST /api/memories
func (h *MemoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input services.CreateMemoryInput
	if err := common.ParseJSONBody(w, r, &input, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	memory, err := h.service.Create(r.Context(), userCtx.UserID, input)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, memory)
}

// Update handles PUT /api/memories/{memoryID}
func (h *MemoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	memoryID := chi.URLParam(r, "memoryID")
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var input services.UpdateMemoryInput
	if err := common.ParseJSONBody(w, r, &input, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	memory, err := h.service.Update(r.Context(), memoryID, userCtx.UserID, input)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, memory)
}

// Delete handles DELETE /api/memories/{memoryID}
func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	memoryID := chi.URLParam(r, "memoryID")
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.service.Delete(r.Context(), memoryID, userCtx.UserID); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"message": "Memory deleted successfully"})
}

// ToggleLike handles POST /api/memories/{memoryID}/like
func (h *MemoryHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	memoryID := chi.URLParam(r, "memoryID")
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	memory, err := h.service.ToggleLike(r.Context(), memoryID, userCtx.UserID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, memory)
}

// AddCommentRequest is the body for POST /api/memories/{memoryID}/comments
type AddCommentRequest struct {
	Text string `json:"text"`
}

// AddComment handles POST /api/memories/{memoryID}/comments
func (h *MemoryHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	memoryID := chi.URLParam(r, "memoryID")
	userCtx, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req AddCommentRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	memory, err := h.service.AddComment(r.Context(), memoryID, userCtx.UserID, req.Text)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, memory)
}

// Upload handles POST /api/memories/upload
func (h *MemoryHandler) Upload(w http.ResponseWriter, r *http.Request) {
	blob, contentType := readUpload(r, "file")
	result, err := h.service.UploadImage(r.Context(), blob, contentType)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// readUpload pulls a single multipart file field into memory along with its
// declared content type. The size ceiling is enforced by the service; the
// reader is still capped a little above it so oversized bodies cannot tie
// up the process.
func readUpload(r *http.Request, field string) ([]byte, string) {
	r.Body = http.MaxBytesReader(nil, r.Body, services.MaxUploadSize+maxBodyBytes)

	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, ""
	}
	defer file.Close()

	blob, err := io.ReadAll(file)
	if err != nil {
		return nil, ""
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" && len(blob) > 0 {
		contentType = http.DetectContentType(blob)
	}
	return blob, contentType
}
