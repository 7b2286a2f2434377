package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/stocksavvy/stocksavvy/internal/handler"
	"github.com/stocksavvy/stocksavvy/internal/middleware"
	"github.com/stocksavvy/stocksavvy/internal/payment"
	"github.com/stocksavvy/stocksavvy/internal/store"
	ws "github.com/stocksavvy/stocksavvy/internal/websocket"
)

type Config struct {
	JWTSecret string
	Gateway   payment.Config
}

type Server struct {
	db            *sql.DB
	cfg           Config
	hub           *ws.Hub
	authH         *handler.AuthHandler
	categoryH     *handler.CategoryHandler
	itemH         *handler.ItemHandler
	locationH     *handler.LocationHandler
	vendorH       *handler.VendorHandler
	shoppingListH *handler.ShoppingListHandler
	notificationH *handler.NotificationHandler
	paymentH      *handler.PaymentHandler
	rateLimiter   *middleware.RateLimiter
	logger        *slog.Logger
}

func New(db *sql.DB, cfg Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	userStore := store.NewUserStore(db)
	categoryStore := store.NewCategoryStore(db)
	itemStore := store.NewItemStore(db)
	locationStore := store.NewLocationStore(db)
	vendorStore := store.NewVendorStore(db)
	shoppingListStore := store.NewShoppingListStore(db)
	notificationStore := store.NewNotificationStore(db)
	paymentStore := store.NewPaymentStore(db)

	gateway := payment.NewClient(cfg.Gateway)

	return &Server{
		db:            db,
		cfg:           cfg,
		hub:           hub,
		authH:         handler.NewAuthHandler(userStore, cfg.JWTSecret, logger.With("component", "auth")),
		categoryH:     handler.NewCategoryHandler(categoryStore, hub, logger.With("component", "category")),
		itemH:         handler.NewItemHandler(itemStore, hub, logger.With("component", "item")),
		locationH:     handler.NewLocationHandler(locationStore, hub, logger.With("component", "location")),
		vendorH:       handler.NewVendorHandler(vendorStore, hub, logger.With("component", "vendor")),
		shoppingListH: handler.NewShoppingListHandler(shoppingListStore, hub, logger.With("component", "shopping_list")),
		notificationH: handler.NewNotificationHandler(notificationStore, hub, logger.With("component", "notification")),
		paymentH:      handler.NewPaymentHandler(paymentStore, userStore, gateway, logger.With("component", "payment")),
		rateLimiter:   middleware.NewRateLimiter(),
		logger:        logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

// Hub returns the live-event hub.
func (s *Server) Hub() *ws.Hub {
	return s.hub
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no auth required)
	outerMux.HandleFunc("POST /api/auth/register", s.rateLimitedHandler(s.authH.Register))
	outerMux.HandleFunc("POST /api/auth/login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("GET /api/health", s.healthHandler)

	// Live entity events. The handshake authenticates its own token (header
	// or query parameter) instead of going through the bearer middleware, so
	// browser WebSocket clients can connect.
	outerMux.HandleFunc("GET /api/ws", ws.HandleWebSocket(s.hub, s.cfg.JWTSecret))

	// Protected routes — wrapped with RequireAuth middleware
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.cfg.JWTSecret)
	outerMux.Handle("/api/", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/auth/me", s.authH.Me)

	// Category routes
	mux.HandleFunc("GET /api/categories", s.categoryH.List)
	mux.HandleFunc("POST /api/categories", s.categoryH.Create)
	mux.HandleFunc("DELETE /api/categories/{id}", s.categoryH.Delete)

	// Item routes; derived views come before the id routes for clarity,
	// the mux matches them by literal segment either way
	mux.HandleFunc("GET /api/items", s.itemH.List)
	mux.HandleFunc("POST /api/items", s.itemH.Create)
	mux.HandleFunc("GET /api/items/expiring", s.itemH.Expiring)
	mux.HandleFunc("GET /api/items/low-stock", s.itemH.LowStock)
	mux.HandleFunc("PUT /api/items/{id}", s.itemH.Update)
	mux.HandleFunc("PATCH /api/items/{id}/quantity", s.itemH.UpdateQuantity)
	mux.HandleFunc("DELETE /api/items/{id}", s.itemH.Delete)

	// Location routes
	mux.HandleFunc("GET /api/locations", s.locationH.List)
	mux.HandleFunc("POST /api/locations", s.locationH.Create)
	mux.HandleFunc("DELETE /api/locations/{id}", s.locationH.Delete)

	// Vendor routes
	mux.HandleFunc("GET /api/vendors", s.vendorH.List)
	mux.HandleFunc("POST /api/vendors", s.vendorH.Create)
	mux.HandleFunc("PUT /api/vendors/{id}", s.vendorH.Update)
	mux.HandleFunc("DELETE /api/vendors/{id}", s.vendorH.Delete)

	// Shopping list routes
	mux.HandleFunc("GET /api/shopping-lists", s.shoppingListH.List)
	mux.HandleFunc("POST /api/shopping-lists", s.shoppingListH.Create)
	mux.HandleFunc("PATCH /api/shopping-lists/{id}/status", s.shoppingListH.UpdateStatus)
	mux.HandleFunc("DELETE /api/shopping-lists/{id}", s.shoppingListH.Delete)

	// Notification routes
	mux.HandleFunc("GET /api/notifications", s.notificationH.List)
	mux.HandleFunc("PATCH /api/notifications/{id}/read", s.notificationH.MarkRead)
	mux.HandleFunc("DELETE /api/notifications/{id}", s.notificationH.Delete)

	// Payment routes
	mux.HandleFunc("POST /api/payments/create-order", s.paymentH.CreateOrder)
	mux.HandleFunc("POST /api/payments/verify", s.paymentH.Verify)
	mux.HandleFunc("GET /api/payments/history", s.paymentH.History)
}
