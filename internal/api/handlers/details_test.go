package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/frogstagram/frogstagram/internal/blobstore"
	"github.com/frogstagram/frogstagram/internal/enrich"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDetailsProxiesResponse(t *testing.T) {
	detection := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req map[string]string
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "frogstagram-posts", req["bucket"])
		assert.Equal(t, "uploads/frog.png", req["key"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"is_frog":true,"confidence":0.97}`))
	}))
	defer detection.Close()

	enricher := enrich.NewClient(detection.URL, 5*time.Second)
	r := newTestRouter(t, blobstore.NewInMemoryStore(), nil, enricher)

	w := doJSON(t, r, http.MethodPost, "/create/details", map[string]string{
		"bucket": "frogstagram-posts",
		"key":    "uploads/frog.png",
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["is_frog"])
}

func TestCreateDetailsUpstreamFailure(t *testing.T) {
	detection := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer detection.Close()

	enricher := enrich.NewClient(detection.URL, 5*time.Second)
	r := newTestRouter(t, blobstore.NewInMemoryStore(), nil, enricher)

	w := doJSON(t, r, http.MethodPost, "/create/details", map[string]string{
		"bucket": "frogstagram-posts",
		"key":    "uploads/frog.png",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Failed to call Lambda function", decodeBody(t, w)["error"])
}

func TestCreateDetailsTransportFailure(t *testing.T) {
	// Point at a closed server to force a connection error.
	detection := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := detection.URL
	detection.Close()

	enricher := enrich.NewClient(url, time.Second)
	r := newTestRouter(t, blobstore.NewInMemoryStore(), nil, enricher)

	w := doJSON(t, r, http.MethodPost, "/create/details", map[string]string{
		"bucket": "frogstagram-posts",
		"key":    "uploads/frog.png",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeBody(t, w)["error"])
}
