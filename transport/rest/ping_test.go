package rest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	t.Run("Ping answers pong", func(t *testing.T) {
		// Given: A mux with the rest routes
		mux := http.NewServeMux()
		RegisterRoutes(mux)

		// When: Calling /ping
		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

		// Then: The answer is 200 pong
		assert.Equal(t, http.StatusOK, recorder.Code)
		body, err := io.ReadAll(recorder.Body)
		require.NoError(t, err)
		assert.Equal(t, "pong", string(body))
	})

	t.Run("Ping only accepts GET", func(t *testing.T) {
		mux := http.NewServeMux()
		RegisterRoutes(mux)

		recorder := httptest.NewRecorder()
		mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/ping", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	})
}
