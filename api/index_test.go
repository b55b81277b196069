package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	w := httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodGet, "/cart/count", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"item_count":0`)
}

func TestHandlerInitFailure(t *testing.T) {
	initApp()
	saved := initErr
	initErr = errors.New("CATALOG_SOURCE must be memory or postgres")
	t.Cleanup(func() { initErr = saved })

	w := httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodGet, "/cart", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":false,"message":"Service unavailable"}`, w.Body.String())
}
