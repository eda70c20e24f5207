package handler

import (
	"net/http"

	"github.com/msomdec/stockeye/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. Login is rate
// limited per client IP; everything under /api except the auth endpoints
// requires a signed-in user.
func RegisterRoutes(
	mux *http.ServeMux,
	auth *service.AuthService,
	inventory *service.InventoryService,
	sales *service.SalesService,
	loginLimiter *service.TokenBucket,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, loginLimiter, cookieSecure)
	productHandler := NewProductHandler(inventory, sales)
	saleHandler := NewSaleHandler(sales)
	dashboardHandler := NewDashboardHandler(inventory)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/login", authHandler.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", authHandler.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(auth, http.HandlerFunc(authHandler.HandleMe)))

	mux.Handle("GET /api/products", RequireAuth(auth, http.HandlerFunc(productHandler.HandleList)))
	mux.Handle("POST /api/products", RequireAuth(auth, http.HandlerFunc(productHandler.HandleCreate)))
	mux.Handle("PATCH /api/products/{id}", RequireAuth(auth, http.HandlerFunc(productHandler.HandleUpdate)))
	mux.Handle("DELETE /api/products/{id}", RequireAuth(auth, http.HandlerFunc(productHandler.HandleDelete)))
	mux.Handle("POST /api/products/{id}/quantity", RequireAuth(auth, http.HandlerFunc(productHandler.HandleAdjustQuantity)))
	mux.Handle("POST /api/products/{id}/sell", RequireAuth(auth, http.HandlerFunc(productHandler.HandleSell)))

	mux.Handle("GET /api/sales", RequireAuth(auth, http.HandlerFunc(saleHandler.HandleList)))
	mux.Handle("GET /api/sales/stats", RequireAuth(auth, http.HandlerFunc(saleHandler.HandleStats)))

	mux.Handle("GET /api/dashboard", RequireAuth(auth, http.HandlerFunc(dashboardHandler.HandleOverview)))
}
