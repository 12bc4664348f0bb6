package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"financetracker/backend/models"
	"financetracker/backend/services"

	"github.com/gorilla/mux"
)

// TransactionHandler serves the /transactions endpoints. Each handler makes
// exactly one service call.
type TransactionHandler struct {
	svc *services.TransactionService
}

func NewTransactionHandler(svc *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// AddTransaction handles POST /transactions
func (h *TransactionHandler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	t, err := h.svc.Create(r.Context(), in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, t)
}

// GetTransactions handles GET /transactions?page=&pageSize=
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	p, err := services.ParsePagination(query.Get("page"), query.Get("pageSize"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), p)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// GetTransaction handles GET /transactions/{id}
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := services.ParseID(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	t, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

// UpdateTransaction handles PUT /transactions/{id}
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := services.ParseID(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	in, ok := decodeInput(w, r)
	if !ok {
		return
	}

	t, err := h.svc.Update(r.Context(), id, in)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, t)
}

// DeleteTransaction handles DELETE /transactions/{id}
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := services.ParseID(mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetTransactionsByDate handles GET /transactions/by-date?startDate=&endDate=
func (h *TransactionHandler) GetTransactionsByDate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	dates, err := services.ParseDateRange(query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	transactions, err := h.svc.GetByDate(r.Context(), dates)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, transactions)
}

// decodeInput reads a typed transaction body. Unknown fields are dropped.
func decodeInput(w http.ResponseWriter, r *http.Request) (models.TransactionInput, bool) {
	var in models.TransactionInput
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&in); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return models.TransactionInput{}, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		WriteError(w, http.StatusBadRequest, "invalid request body: unexpected data after JSON object")
		return models.TransactionInput{}, false
	}
	return in, true
}
