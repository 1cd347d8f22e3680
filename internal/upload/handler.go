package upload

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gocms/internal/common"
	"gocms/internal/content"
)

type Handler struct {
	service *Service
	log     *zap.SugaredLogger
}

func NewHandler(service *Service, log *zap.SugaredLogger) *Handler {
	return &Handler{service: service, log: log}
}

// Register mounts one upload-url route per collection, all behind the auth
// middleware.
func (h *Handler) Register(r *mux.Router, requireAuth mux.MiddlewareFunc) {
	for _, collection := range content.Collections() {
		col := collection
		r.Handle("/"+col.String()+"/upload-url",
			requireAuth(http.HandlerFunc(h.handleUploadURL(col)))).Methods(http.MethodPost)
	}
}

type uploadURLRequest struct {
	ContentType string `json:"content_type"`
}

func (h *Handler) handleUploadURL(collection content.Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req uploadURLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		authorization, err := h.service.Authorize(r.Context(), collection, req.ContentType)
		if err != nil {
			status, message := common.StatusForError(err)
			if status >= http.StatusInternalServerError {
				h.log.Errorw("presign failed", "collection", collection, "error", err)
			}
			common.WriteError(w, status, message)
			return
		}

		common.WriteSuccess(w, http.StatusOK, authorization, "")
	}
}
