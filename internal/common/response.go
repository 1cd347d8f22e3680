package common

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Pagination is the metadata attached to list responses.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalCount  int  `json:"total_count"`
	Limit       int  `json:"limit"`
	HasNext     bool `json:"has_next"`
	HasPrev     bool `json:"has_prev"`
}

// NewPagination computes metadata for page (1-based) over totalCount items
// with the given page size.
func NewPagination(page, limit, totalCount int) Pagination {
	totalPages := (totalCount + limit - 1) / limit
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  totalCount,
		Limit:       limit,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

type ListResponse struct {
	Success        bool        `json:"success"`
	Data           interface{} `json:"data"`
	Total          int         `json:"total"`
	Pagination     Pagination  `json:"pagination"`
	CategoryFilter []string    `json:"category_filter,omitempty"`
}

type ErrorResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	StatusCode int    `json:"status_code"`
}

func WriteJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}, message string) {
	WriteJSON(w, status, Response{Success: true, Data: data, Message: message})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Success: false, Error: message, StatusCode: status})
}

// StatusForError maps an error kind to the HTTP status and the message safe
// to expose. Storage causes are kept out of response bodies.
func StatusForError(err error) (int, string) {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	var authErr *AuthError
	var storageErr *StorageError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Error()
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, notFoundErr.Error()
	case errors.As(err, &authErr):
		if authErr.Reason == AuthForbidden {
			return http.StatusForbidden, authErr.Message
		}
		return http.StatusUnauthorized, authErr.Message
	case errors.As(err, &storageErr):
		return http.StatusInternalServerError, "internal server error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
