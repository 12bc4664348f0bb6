package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	db := CreateTestDB(t)
	h := NewHealthHandler(db)

	rr := serve(h.HealthCheck, newRequest("GET", "/health", ""))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())

	db.Close()
	rr = serve(h.HealthCheck, newRequest("GET", "/health", ""))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":"unavailable"}`, rr.Body.String())
}
