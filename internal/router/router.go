package router

import (
	"net/http"

	"github.com/niaone/backend/internal/auth"
	"github.com/niaone/backend/internal/catalog"
	"github.com/niaone/backend/internal/dashboard"
	"github.com/niaone/backend/internal/ledger"
	"github.com/niaone/backend/internal/middleware"
	"github.com/niaone/backend/internal/orders"
	"github.com/niaone/backend/internal/rewards"
)

// Handlers collects everything the route table wires up.
type Handlers struct {
	Auth      *auth.Handler
	Ledger    *ledger.Handler
	Catalog   *catalog.Handler
	Orders    *orders.Handler
	Rewards   *rewards.Handler
	Dashboard *dashboard.Handler
}

// New returns an http.Handler serving the API under /api/v1.
// Middleware chain: RequireAuth -> (RequireStaff on staff routes) -> handler.
func New(h Handlers, tokens middleware.TokenValidator, accounts middleware.AccountSource) http.Handler {
	mux := http.NewServeMux()
	base := "/api/v1"

	authed := middleware.RequireAuth(tokens, accounts)
	staff := middleware.RequireStaff()

	mux.HandleFunc("POST "+base+"/auth/login", h.Auth.Login)
	mux.HandleFunc("POST "+base+"/auth/logout", h.Auth.Logout)

	// Any authenticated account.
	mux.Handle("GET "+base+"/account/me", authed(http.HandlerFunc(h.Dashboard.GetMe)))
	mux.Handle("GET "+base+"/catalog", authed(http.HandlerFunc(h.Catalog.List)))
	mux.Handle("GET "+base+"/leaderboard", authed(http.HandlerFunc(h.Ledger.Leaderboard)))
	mux.Handle("GET "+base+"/actions", authed(http.HandlerFunc(h.Ledger.Actions)))
	mux.Handle("GET "+base+"/activity/me", authed(http.HandlerFunc(h.Ledger.MyActivity)))
	mux.Handle("GET "+base+"/rewards", authed(http.HandlerFunc(h.Rewards.List)))
	mux.Handle("POST "+base+"/rewards/redeem", authed(http.HandlerFunc(h.Rewards.Redeem)))
	mux.Handle("GET "+base+"/vouchers/me", authed(http.HandlerFunc(h.Rewards.MyVouchers)))
	mux.Handle("POST "+base+"/orders", authed(http.HandlerFunc(h.Orders.Place)))
	mux.Handle("GET "+base+"/orders/me", authed(http.HandlerFunc(h.Orders.ListMine)))

	// Staff tools.
	mux.Handle("POST "+base+"/adjustments", authed(staff(http.HandlerFunc(h.Ledger.Adjust))))
	mux.Handle("GET "+base+"/activity", authed(staff(http.HandlerFunc(h.Ledger.Activity))))
	mux.Handle("POST "+base+"/residents", authed(staff(http.HandlerFunc(h.Ledger.Onboard))))
	mux.Handle("GET "+base+"/residents", authed(staff(http.HandlerFunc(h.Dashboard.ListResidents))))
	mux.Handle("GET "+base+"/metrics", authed(staff(http.HandlerFunc(h.Dashboard.Metrics))))
	mux.Handle("GET "+base+"/orders", authed(staff(http.HandlerFunc(h.Orders.ListAll))))
	mux.Handle("POST "+base+"/orders/fulfill", authed(staff(http.HandlerFunc(h.Orders.Fulfill))))
	mux.Handle("GET "+base+"/vouchers/{code}", authed(staff(http.HandlerFunc(h.Rewards.LookupVoucher))))
	mux.Handle("POST "+base+"/vouchers/fulfill", authed(staff(http.HandlerFunc(h.Rewards.FulfillVoucher))))

	return mux
}
