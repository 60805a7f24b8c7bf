package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frogstagram/frogstagram/internal/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	r := newTestRouter(t, blobstore.NewInMemoryStore(), nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decodeBody(t, w)["status"])
}

func TestRootWithoutSession(t *testing.T) {
	r := newTestRouter(t, blobstore.NewInMemoryStore(), nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decodeBody(t, w)["session"])
}
