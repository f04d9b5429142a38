// Package dashboard serves the staff overview: the resident roster,
// aggregate metrics, and the signed-in account view shared by both front
// ends.
package dashboard

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/niaone/backend/internal/middleware"
	"github.com/niaone/backend/internal/models"
	"github.com/niaone/backend/internal/store"
)

type Handler struct {
	store *store.Store
	log   *slog.Logger
}

func NewHandler(s *store.Store, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{store: s, log: log}
}

// GetMe handles GET /api/v1/account/me.
func (h *Handler) GetMe(w http.ResponseWriter, r *http.Request) {
	acc := middleware.AccountFromCtx(r.Context())
	if acc == nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, acc)
}

// ListResidents handles GET /api/v1/residents (staff only). The roster
// comes back in onboarding order, the way the manual ledger lists it.
func (h *Handler) ListResidents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.ListAccountsByRole(models.RoleResident))
}

type metricsResponse struct {
	Residents         int `json:"residents"`
	PointsOutstanding int `json:"points_outstanding"`
	EntriesToday      int `json:"entries_today"`
	OrdersPending     int `json:"orders_pending"`
}

// Metrics handles GET /api/v1/metrics (staff only).
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	residents := h.store.ListAccountsByRole(models.RoleResident)
	total := 0
	for _, res := range residents {
		total += res.Balance
	}
	midnight := time.Now().UTC().Truncate(24 * time.Hour)
	writeJSON(w, http.StatusOK, metricsResponse{
		Residents:         len(residents),
		PointsOutstanding: total,
		EntriesToday:      h.store.CountActivitySince(midnight),
		OrdersPending:     h.store.CountOrdersByStatus(models.OrderStatusPlaced),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
