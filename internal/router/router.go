package router

import (
	"net/http"
	"strings"
	"time"

	"compumart/internal/handler"
	"compumart/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	requestTimeout time.Duration,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product routes: collection on /api/products, single record on
	// /api/products/{id}
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			switch r.Method {
			case http.MethodGet:
				productHandler.GetByID(w, r)
			case http.MethodDelete:
				productHandler.Delete(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		switch r.Method {
		case http.MethodGet:
			productHandler.GetAll(w, r)
		case http.MethodPost:
			productHandler.Create(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes: one path, dispatched on method
	mux.HandleFunc("/api/cart", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			cartHandler.Get(w, r)
		case http.MethodPost:
			cartHandler.Add(w, r)
		case http.MethodPut:
			cartHandler.Update(w, r)
		case http.MethodDelete:
			cartHandler.Remove(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	})

	// Customer order list
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		orderHandler.ListCustomer(w, r)
	})

	// Admin order routes
	adminOrderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/admin/orders" || r.URL.Path == "/api/admin/orders/" {
			switch r.Method {
			case http.MethodPost:
				orderHandler.Create(w, r)
			case http.MethodGet:
				orderHandler.ListAdmin(w, r)
			default:
				http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			}
			return
		}

		switch {
		case r.Method == http.MethodPut && strings.HasSuffix(r.URL.Path, "/status"):
			orderHandler.UpdateStatus(w, r)
		case r.Method == http.MethodDelete:
			orderHandler.Delete(w, r)
		default:
			http.Error(w, "not found", http.StatusNotFound)
		}
	}
	mux.HandleFunc("/api/admin/orders", adminOrderRouteHandler)
	mux.HandleFunc("/api/admin/orders/", adminOrderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> Timeout
	var h http.Handler = mux
	h = middleware.Timeout(requestTimeout)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
