package upload

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"gocms/internal/common"
)

func newTestHandlerRouter(t *testing.T) (*mux.Router, *common.TokenService) {
	t.Helper()
	svc, _ := newTestUpload(t)
	tokens := common.NewTokenService("test-secret")
	log := svc.log

	r := mux.NewRouter()
	NewHandler(svc, log).Register(r, common.AuthMiddleware(tokens, log))
	return r, tokens
}

func TestHandler_UploadURL(t *testing.T) {
	r, tokens := newTestHandlerRouter(t)
	token, err := tokens.Issue(common.Identity{Username: "admin", Role: common.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/gallery/upload-url",
		strings.NewReader(`{"content_type":"image/jpeg"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool          `json:"success"`
		Data    Authorization `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.True(t, strings.HasPrefix(resp.Data.FileKey, "gallery/"))
	require.True(t, strings.HasSuffix(resp.Data.FileKey, ".jpg"))
	require.NotEmpty(t, resp.Data.UploadURL)
}

func TestHandler_UploadURLRequiresAuth(t *testing.T) {
	r, _ := newTestHandlerRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/news/upload-url",
		strings.NewReader(`{"content_type":"image/png"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_UploadURLUnsupportedType(t *testing.T) {
	r, tokens := newTestHandlerRouter(t)
	token, err := tokens.Issue(common.Identity{Username: "admin", Role: common.RoleAdmin})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/news/upload-url",
		strings.NewReader(`{"content_type":"video/mp4"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}
