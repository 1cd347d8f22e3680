package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
		wantErr   bool
	}{
		{name: "defaults", page: "", limit: "", wantPage: 1, wantLimit: 10},
		{name: "explicit", page: "3", limit: "20", wantPage: 3, wantLimit: 20},
		{name: "limit clamped", page: "1", limit: "500", wantPage: 1, wantLimit: MaxPageSize},
		{name: "zero page", page: "0", limit: "10", wantErr: true},
		{name: "negative limit", page: "1", limit: "-5", wantErr: true},
		{name: "non-numeric page", page: "abc", limit: "10", wantErr: true},
		{name: "non-numeric limit", page: "1", limit: "ten", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, limit, err := ParsePagination(tc.page, tc.limit, 10)
			if tc.wantErr {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantPage, page)
			require.Equal(t, tc.wantLimit, limit)
		})
	}
}

func TestRequireField(t *testing.T) {
	require.NoError(t, RequireField("title", "x"))
	require.Error(t, RequireField("title", ""))
	require.Error(t, RequireField("title", "   "))
}
