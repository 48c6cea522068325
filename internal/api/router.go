// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"deposit-service/internal/api/handler"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(depositHandler *handler.DepositHandler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)                       // Add a request ID to the context
	r.Use(middleware.RealIP)                          // Use the real IP address
	r.Use(middleware.Logger)                          // Log HTTP requests
	r.Use(middleware.Recoverer)                       // Recover from panics and return 500
	r.Use(middleware.Timeout(handler.DefaultTimeout)) // Set a default timeout for requests

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Deposit API routes
	r.Route("/deposit", func(r chi.Router) {
		r.Get("/findAllDeposits", depositHandler.FindAllDeposits)
		r.Get("/findAllDepositsByAccountNumber/{accountNumber}", depositHandler.FindAllDepositsByAccountNumber)
		r.Get("/findByDepositNumber/{depositNumber}", depositHandler.FindByDepositNumber)
		r.Post("/saveDeposits", depositHandler.SaveDeposits)
		r.Put("/updateDeposit/{depositNumber}", depositHandler.UpdateDeposit)
		r.Delete("/deleteDeposits/{depositNumber}", depositHandler.DeleteDeposits)
		r.Get("/getCommissionsDeposit/{accountNumber}", depositHandler.GetCommissionsDeposit)
		r.Get("/getCountTransaction/{accountNumber}", depositHandler.GetCountTransaction)
	})

	return r
}
