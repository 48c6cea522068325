// internal/api/handler/deposit.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"

	"deposit-service/internal/domain"
	"deposit-service/internal/metrics"
	"deposit-service/internal/service"
	"deposit-service/internal/util" // For custom errors
)

// DefaultTimeout is the per-request timeout applied by the router middleware.
const DefaultTimeout = 30 * time.Second

// DepositHandler handles HTTP requests related to deposit operations.
//
// The read-one, create, update and delete paths run through a shared circuit
// breaker: on any downstream failure (or while the breaker is open) they
// serve a safe default response instead of an error. List and query paths
// are not wrapped and propagate failures directly.
type DepositHandler struct {
	service service.DepositService
	logger  *slog.Logger
	breaker *gobreaker.CircuitBreaker
}

// NewDepositHandler creates a new DepositHandler.
func NewDepositHandler(svc service.DepositService, logger *slog.Logger) *DepositHandler {
	return &DepositHandler{
		service: svc,
		logger:  logger,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "deposits",
			Timeout: 10 * time.Second,
		}),
	}
}

// Helper function to send JSON responses.
func (h *DepositHandler) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses on the unwrapped paths.
func (h *DepositHandler) respondWithError(w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrNotFound), util.IsError(err, util.ErrDepositNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	default:
		h.logger.Error("Unhandled service error", "error", err)
	}

	h.respondWithJSON(w, statusCode, map[string]string{"error": message})
}

// fallbackDeposit serves the degraded-mode default for deposit-valued paths:
// an empty deposit record instead of the error.
func (h *DepositHandler) fallbackDeposit(w http.ResponseWriter, operation string, err error) {
	h.logger.Error("Serving fallback deposit", "operation", operation, "error", err)
	metrics.FallbackResponses.WithLabelValues(operation).Inc()
	h.respondWithJSON(w, http.StatusOK, &domain.Deposit{})
}

// fallbackNoContent serves the degraded-mode default for the delete path:
// a no-op success.
func (h *DepositHandler) fallbackNoContent(w http.ResponseWriter, operation string, err error) {
	h.logger.Error("Serving fallback no-op", "operation", operation, "error", err)
	metrics.FallbackResponses.WithLabelValues(operation).Inc()
	w.WriteHeader(http.StatusNoContent)
}

// FindAllDeposits handles listing every deposit.
// GET /deposit/findAllDeposits
func (h *DepositHandler) FindAllDeposits(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.service.FindAll(r.Context())
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, deposits)
}

// FindAllDepositsByAccountNumber handles listing the deposits of one account.
// GET /deposit/findAllDepositsByAccountNumber/{accountNumber}
func (h *DepositHandler) FindAllDepositsByAccountNumber(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")
	deposits, err := h.service.FindByAccountNumber(r.Context(), accountNumber)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, deposits)
}

// FindByDepositNumber handles fetching a single deposit by its business key.
// GET /deposit/findByDepositNumber/{depositNumber}
func (h *DepositHandler) FindByDepositNumber(w http.ResponseWriter, r *http.Request) {
	depositNumber := chi.URLParam(r, "depositNumber")

	result, err := h.breaker.Execute(func() (interface{}, error) {
		return h.service.FindByNumber(r.Context(), depositNumber)
	})
	if err != nil {
		h.fallbackDeposit(w, "find_by_number", err)
		return
	}

	deposit := result.(*domain.Deposit)
	if deposit == nil {
		h.respondWithJSON(w, http.StatusNotFound, map[string]string{"error": "Resource not found"})
		return
	}
	h.respondWithJSON(w, http.StatusOK, deposit)
}

// CreateDepositRequest represents the request body for deposit creation.
type CreateDepositRequest struct {
	DepositNumber string          `json:"deposit_number"`
	AccountNumber string          `json:"account_number"`
	DNI           string          `json:"dni"`
	Amount        decimal.Decimal `json:"amount"`
}

// SaveDeposits handles the deposit creation request.
// POST /deposit/saveDeposits
func (h *DepositHandler) SaveDeposits(w http.ResponseWriter, r *http.Request) {
	var req CreateDepositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	// Basic validation
	if req.DepositNumber == "" || req.AccountNumber == "" || req.DNI == "" {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}
	if req.Amount.IsNegative() || req.Amount.IsZero() {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	result, err := h.breaker.Execute(func() (interface{}, error) {
		return h.service.Save(r.Context(), service.CreateDeposit{
			DepositNumber: req.DepositNumber,
			AccountNumber: req.AccountNumber,
			DNI:           req.DNI,
			Amount:        req.Amount,
		})
	})
	if err != nil {
		h.fallbackDeposit(w, "save", err)
		return
	}

	h.respondWithJSON(w, http.StatusCreated, result.(*domain.Deposit))
}

// UpdateDeposit handles overwriting a stored deposit.
// PUT /deposit/updateDeposit/{depositNumber}
func (h *DepositHandler) UpdateDeposit(w http.ResponseWriter, r *http.Request) {
	depositNumber := chi.URLParam(r, "depositNumber")

	var data domain.Deposit
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.respondWithError(w, util.ErrInvalidInput)
		return
	}

	result, err := h.breaker.Execute(func() (interface{}, error) {
		return h.service.Update(r.Context(), depositNumber, &data)
	})
	if err != nil {
		h.fallbackDeposit(w, "update", err)
		return
	}

	h.respondWithJSON(w, http.StatusOK, result.(*domain.Deposit))
}

// DeleteDeposits handles removing a deposit by its business key.
// DELETE /deposit/deleteDeposits/{depositNumber}
func (h *DepositHandler) DeleteDeposits(w http.ResponseWriter, r *http.Request) {
	depositNumber := chi.URLParam(r, "depositNumber")

	_, err := h.breaker.Execute(func() (interface{}, error) {
		return nil, h.service.Delete(r.Context(), depositNumber)
	})
	if err != nil {
		h.fallbackNoContent(w, "delete", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetCommissionsDeposit handles listing the charged deposits of an account.
// GET /deposit/getCommissionsDeposit/{accountNumber}
func (h *DepositHandler) GetCommissionsDeposit(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")
	deposits, err := h.service.FindByCommission(r.Context(), accountNumber)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, deposits)
}

// GetCountTransaction handles counting the deposits of an account.
// GET /deposit/getCountTransaction/{accountNumber}
func (h *DepositHandler) GetCountTransaction(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")
	count, err := h.service.CountByAccountNumber(r.Context(), accountNumber)
	if err != nil {
		h.respondWithError(w, err)
		return
	}
	h.respondWithJSON(w, http.StatusOK, map[string]int64{"count": count})
}
