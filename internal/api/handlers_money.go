package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/astralhq/astral/internal/derive"
	"github.com/astralhq/astral/internal/types"
	"github.com/astralhq/astral/internal/validation"
)

// ListTransactions handles GET /api/v1/transactions with an optional
// category filter.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	var txns []types.Transaction
	h.store.Read(func(st *types.AppState, _ time.Time) {
		if c := r.URL.Query().Get("category"); c != "" {
			txns = derive.TransactionsByCategory(st, types.TransactionCategory(c))
			return
		}
		txns = append(txns, st.Transactions...)
	})
	writeJSON(w, http.StatusOK, txns)
}

// CreateTransaction handles POST /api/v1/transactions
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in types.NewTransaction
	if !decodeJSON(w, r, &in) {
		return
	}

	var c validation.Collector
	c.Add(validation.ValidateEnum("type", string(in.Type), []string{
		string(types.TransactionIncome), string(types.TransactionExpense),
	}))
	c.Add(validation.ValidateDate("date", in.Date))
	if c.HasErrors() {
		WriteProblemWithErrors(w, r, "Request contains invalid fields", c.Errors())
		return
	}

	txn, err := h.store.AddTransaction(r.Context(), in)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, txn)
}

// UpdateTransaction handles PATCH /api/v1/transactions/{id}
func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var u types.TransactionUpdate
	if !decodeJSON(w, r, &u) {
		return
	}

	txn, err := h.store.UpdateTransaction(r.Context(), chi.URLParam(r, "id"), u)
	if err != nil {
		MapStateError(w, r, err)
		return
	}
	if txn == nil {
		WriteProblem(w, r, http.StatusNotFound, "Transaction not found")
		return
	}
	writeJSON(w, http.StatusOK, txn)
}

// DeleteTransaction handles DELETE /api/v1/transactions/{id}
func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTransaction(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapStateError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MoneySummary is the GET /api/v1/money/summary payload for the current
// calendar month.
type MoneySummary struct {
	MonthlyIncome   float64 `json:"monthlyIncome"`
	MonthlyExpenses float64 `json:"monthlyExpenses"`
	Net             float64 `json:"net"`
}

// GetMoneySummary handles GET /api/v1/money/summary
func (h *Handler) GetMoneySummary(w http.ResponseWriter, r *http.Request) {
	var out MoneySummary
	h.store.Read(func(st *types.AppState, now time.Time) {
		out.MonthlyIncome = derive.MonthlyIncome(st, now)
		out.MonthlyExpenses = derive.MonthlyExpenses(st, now)
		out.Net = out.MonthlyIncome - out.MonthlyExpenses
	})
	writeJSON(w, http.StatusOK, out)
}
