package common

import (
	"strconv"
	"strings"
)

// MaxPageSize caps the number of items a single page may request.
const MaxPageSize = 50

func RequireField(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "is required")
	}
	return nil
}

// ParsePagination validates page/limit query values. Empty values fall back
// to page 1 and defaultLimit; limits above MaxPageSize are clamped, not
// rejected.
func ParsePagination(pageStr, limitStr string, defaultLimit int) (page, limit int, err error) {
	page = 1
	limit = defaultLimit

	if pageStr != "" {
		page, err = strconv.Atoi(pageStr)
		if err != nil {
			return 0, 0, NewValidationError("page", "must be a valid integer")
		}
	}
	if limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			return 0, 0, NewValidationError("limit", "must be a valid integer")
		}
	}

	if page < 1 {
		return 0, 0, NewValidationError("page", "must be greater than 0")
	}
	if limit < 1 {
		return 0, 0, NewValidationError("limit", "must be greater than 0")
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit, nil
}
