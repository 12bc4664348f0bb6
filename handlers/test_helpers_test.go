package handlers

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"financetracker/backend/config"
	"financetracker/backend/database"
	"financetracker/backend/migrations"
	"financetracker/backend/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// CreateTestDB returns a migrated in-memory database
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migrations.RunMigrations(db, database.SQLite))
	return db
}

func newTestHandler(t *testing.T) *TransactionHandler {
	t.Helper()
	return NewTransactionHandler(services.NewTransactionService(CreateTestDB(t), database.SQLite))
}

// newRequest builds a request with an optional raw JSON body
func newRequest(method, url string, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// withID sets the {id} route variable the way the router would
func withID(req *http.Request, id string) *http.Request {
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), v), "body: %s", rr.Body.String())
}

// createTestTransaction posts a transaction and returns its id
func createTestTransaction(t *testing.T, h *TransactionHandler, body string) int64 {
	t.Helper()
	rr := serve(h.AddTransaction, newRequest("POST", "/transactions", body))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created struct {
		ID int64 `json:"id"`
	}
	decodeBody(t, rr, &created)
	return created.ID
}
