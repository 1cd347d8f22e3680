package content

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gocms/internal/common"
)

// Handler translates HTTP requests into content service calls and service
// results into response envelopes.
type Handler struct {
	service *Service
	log     *zap.SugaredLogger
}

func NewHandler(service *Service, log *zap.SugaredLogger) *Handler {
	return &Handler{service: service, log: log}
}

func defaultPageSize(collection Collection) int {
	if collection == CollectionGallery {
		return 12
	}
	return 10
}

// Register mounts the per-collection routes. Mutating routes are wrapped in
// the auth middleware.
func (h *Handler) Register(r *mux.Router, requireAuth mux.MiddlewareFunc) {
	for _, collection := range Collections() {
		col := collection
		base := "/" + col.String()

		r.HandleFunc(base, h.handleList(col)).Methods(http.MethodGet)
		if col != CollectionGallery {
			r.HandleFunc(base+"/recent", h.handleRecent(col)).Methods(http.MethodGet)
		}
		r.HandleFunc(base+"/categories", h.handleCategories(col)).Methods(http.MethodGet)
		r.HandleFunc(base+"/{id}", h.handleGet(col)).Methods(http.MethodGet)

		r.Handle(base, requireAuth(http.HandlerFunc(h.handleCreate(col)))).Methods(http.MethodPost)
		r.Handle(base+"/{id}", requireAuth(http.HandlerFunc(h.handleUpdate(col)))).Methods(http.MethodPut)
		r.Handle(base+"/{id}", requireAuth(http.HandlerFunc(h.handleDelete(col)))).Methods(http.MethodDelete)
	}
}

func (h *Handler) handleList(collection Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		page, limit, err := common.ParsePagination(query.Get("page"), query.Get("limit"), defaultPageSize(collection))
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		result, err := h.service.List(r.Context(), collection, page, limit, categoryFilter(query["category"]))
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		common.WriteJSON(w, http.StatusOK, common.ListResponse{
			Success:        true,
			Data:           result.Items,
			Total:          result.Total,
			Pagination:     result.Pagination,
			CategoryFilter: result.CategoryFilter,
		})
	}
}

func (h *Handler) handleRecent(collection Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.service.Recent(r.Context(), collection, categoryFilter(r.URL.Query()["category"]))
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		common.WriteSuccess(w, http.StatusOK, items, "")
	}
}

func (h *Handler) handleCategories(collection Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		common.WriteSuccess(w, http.StatusOK, map[string]interface{}{
			"collection": collection.String(),
			"categories": AllowedCategories(collection),
		}, "")
	}
}

func (h *Handler) handleGet(collection Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := h.service.Get(r.Context(), collection, mux.Vars(r)["id"])
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		common.WriteSuccess(w, http.StatusOK, item, "")
	}
}

func (h *Handler) handleCreate(collection Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CreateInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			common.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		item, err := h.service.Create(r.Context(), collection, input)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		common.WriteSuccess(w, http.StatusCreated, item, "created")
	}
}

func (h *Handler) handleUpdate(collection Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input UpdateInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			common.WriteError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		item, err := h.service.Update(r.Context(), collection, mux.Vars(r)["id"], input)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		common.WriteSuccess(w, http.StatusOK, item, "updated")
	}
}

func (h *Handler) handleDelete(collection Collection) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.Delete(r.Context(), collection, mux.Vars(r)["id"]); err != nil {
			h.writeError(w, r, err)
			return
		}
		common.WriteSuccess(w, http.StatusOK, nil, "deleted")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := common.StatusForError(err)
	if status >= http.StatusInternalServerError {
		h.log.Errorw("request failed", "path", r.URL.Path, "error", err)
	}
	common.WriteError(w, status, message)
}

// categoryFilter splits repeated and comma-separated category query values
// into one filter set.
func categoryFilter(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
