package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fooddelivery-api/internal/address"
	"fooddelivery-api/internal/cart"
	"fooddelivery-api/internal/catalog"
	"fooddelivery-api/internal/checkout"
	"fooddelivery-api/internal/order"
	"fooddelivery-api/internal/payment"
)

// Deps carries the stores and services the routes are built on.
type Deps struct {
	Catalog   *catalog.Store
	Cart      *cart.Ledger
	Addresses *address.Book
	Payments  *payment.Vault
	Orders    *order.Ledger
	Checkout  *checkout.Service
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server with the API routes.
func New(addr string, logger *log.Logger, deps Deps, corsOrigins []string) (*Server, error) {
	router := buildRouter(logger, deps, corsOrigins)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
