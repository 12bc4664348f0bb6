package api

import (
	"database/sql"
	"net/http"

	"financetracker/backend/database"
	"financetracker/backend/handlers"
	"financetracker/backend/middleware"
	"financetracker/backend/services"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Options configures the middleware around the router.
type Options struct {
	CORSAllowedOrigins []string
	Development        bool
}

// Server represents the API server
type Server struct {
	db                 *sql.DB
	router             *mux.Router
	logger             zerolog.Logger
	opts               Options
	transactionHandler *handlers.TransactionHandler
	healthHandler      *handlers.HealthHandler
}

// NewServer creates a new API server over a shared database handle.
func NewServer(db *sql.DB, dialect database.Dialect, logger zerolog.Logger, opts Options) *Server {
	s := &Server{
		db:                 db,
		router:             mux.NewRouter(),
		logger:             logger,
		opts:               opts,
		transactionHandler: handlers.NewTransactionHandler(services.NewTransactionService(db, dialect)),
		healthHandler:      handlers.NewHealthHandler(db),
	}
	s.RegisterRoutes()
	return s
}

// RegisterRoutes registers all API routes, both at the root and under /api
func (s *Server) RegisterRoutes() {
	s.router.NotFoundHandler = http.HandlerFunc(notFound)
	s.router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	s.registerRoutes(s.router)
	apiRouter := s.router.PathPrefix("/api").Subrouter()
	apiRouter.NotFoundHandler = s.router.NotFoundHandler
	apiRouter.MethodNotAllowedHandler = s.router.MethodNotAllowedHandler
	s.registerRoutes(apiRouter)
}

func (s *Server) registerRoutes(r *mux.Router) {
	th := s.transactionHandler

	r.HandleFunc("/health", s.healthHandler.HealthCheck).Methods("GET")

	r.HandleFunc("/transactions", th.GetTransactions).Methods("GET")
	r.HandleFunc("/transactions", th.AddTransaction).Methods("POST")

	// Literal paths must come before /transactions/{id}
	r.HandleFunc("/transactions/categories", th.GetCategories).Methods("GET")
	r.HandleFunc("/transactions/summary", th.GetSummary).Methods("GET")
	r.HandleFunc("/transactions/by-category", th.GetTransactionsByCategory).Methods("GET")
	r.HandleFunc("/transactions/by-date", th.GetTransactionsByDate).Methods("GET")

	r.HandleFunc("/transactions/{id}", th.GetTransaction).Methods("GET")
	r.HandleFunc("/transactions/{id}", th.UpdateTransaction).Methods("PUT")
	r.HandleFunc("/transactions/{id}", th.DeleteTransaction).Methods("DELETE")
}

// Handler returns the HTTP handler for the API server. Middleware wraps the
// whole router so unmatched routes and preflights pass through it too.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router
	h = middleware.EnableCORS(s.opts.CORSAllowedOrigins, s.opts.Development)(h)
	h = middleware.Recover(h)
	return middleware.RequestLogger(s.logger)(h)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	handlers.WriteError(w, http.StatusNotFound, "route not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	handlers.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
}
