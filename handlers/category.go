package handlers

import (
	"net/http"

	"financetracker/backend/services"
)

// GetCategories handles GET /transactions/categories
func (h *TransactionHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.GetCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categories)
}

// GetTransactionsByCategory handles GET /transactions/by-category?categories=a,b
func (h *TransactionHandler) GetTransactionsByCategory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("categories") {
		writeServiceError(w, r, &services.InvalidParameterError{Param: "categories", Message: "query parameter is required"})
		return
	}

	transactions, err := h.svc.GetByCategory(r.Context(), services.ParseCategories(query.Get("categories")))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}
