package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"gocms/internal/common"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/auth/login", h.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/validate", h.handleValidate).Methods(http.MethodPost)
	r.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, identity, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		status, message := common.StatusForError(err)
		common.WriteError(w, status, message)
		return
	}

	common.WriteSuccess(w, http.StatusOK, loginResponse{
		Token:    token,
		Username: identity.Username,
		Role:     identity.Role,
	}, "login successful")
}

type validateRequest struct {
	Token string `json:"token"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	identity, err := h.service.ValidateToken(req.Token)
	if err != nil {
		status, message := common.StatusForError(err)
		common.WriteError(w, status, message)
		return
	}

	common.WriteSuccess(w, http.StatusOK, identity, "")
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	common.WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"}, "")
}
