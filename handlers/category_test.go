package handlers

import (
	"net/http"
	"testing"

	"financetracker/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCategories(t *testing.T) {
	h := newTestHandler(t)

	rr := serve(h.GetCategories, newRequest("GET", "/transactions/categories", ""))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	createTestTransaction(t, h, `{"type":"Expense","amount":5,"category":"Transport","date":"2024-01-02"}`)
	createTestTransaction(t, h, `{"type":"Expense","amount":7,"category":"Food","date":"2024-01-03"}`)
	createTestTransaction(t, h, `{"type":"Expense","amount":9,"category":"Food","date":"2024-01-04"}`)

	rr = serve(h.GetCategories, newRequest("GET", "/transactions/categories", ""))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `["Food","Transport"]`, rr.Body.String())
}

func TestGetTransactionsByCategory(t *testing.T) {
	h := newTestHandler(t)
	createTestTransaction(t, h, `{"type":"Expense","amount":5,"category":"Transport","date":"2024-01-02"}`)
	createTestTransaction(t, h, `{"type":"Expense","amount":7,"category":"Food","date":"2024-01-03"}`)
	createTestTransaction(t, h, `{"type":"Income","amount":900,"category":"Salary","date":"2024-01-04"}`)

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantCount  int
	}{
		{"single", "categories=Food", http.StatusOK, 1},
		{"several with spaces", "categories=Food,%20Salary", http.StatusOK, 2},
		{"unknown category", "categories=Travel", http.StatusOK, 0},
		{"empty value", "categories=", http.StatusOK, 0},
		{"missing parameter", "", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := serve(h.GetTransactionsByCategory, newRequest("GET", "/transactions/by-category?"+tt.query, ""))
			require.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got []models.Transaction
			decodeBody(t, rr, &got)
			assert.Len(t, got, tt.wantCount)
			assert.NotContains(t, rr.Body.String(), "null")
		})
	}
}
