package handlers

import (
	"net/http"

	"financetracker/backend/services"
)

// GetSummary handles GET /transactions/summary?startDate=&endDate=
func (h *TransactionHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dates, err := services.ParseDateRange(query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	summary, err := h.svc.Summary(r.Context(), dates)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
