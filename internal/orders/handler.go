package orders

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/niaone/backend/internal/middleware"
	"github.com/niaone/backend/internal/services"
	"github.com/niaone/backend/internal/store"
)

type Handler struct {
	svc       Service
	validator *services.Validator
	log       *slog.Logger
}

func NewHandler(svc Service, validator *services.Validator, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, validator: validator, log: log}
}

type placeOrderRequest struct {
	Lines []Line `json:"lines"`
}

// Place handles POST /api/v1/orders.
func (h *Handler) Place(w http.ResponseWriter, r *http.Request) {
	acc := middleware.AccountFromCtx(r.Context())
	if acc == nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, `{"error":"failed to read body"}`, http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), "order", body); err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	var req placeOrderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	order, err := h.svc.Place(r.Context(), acc.ID, acc.Name, req.Lines)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyOrder), errors.Is(err, ErrBadQuantity):
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
		case errors.Is(err, store.ErrNotFound):
			http.Error(w, `{"error":"unknown catalog item"}`, http.StatusNotFound)
		default:
			h.log.Error("place order", "error", err)
			http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		}
		return
	}
	h.log.Info("order placed", "code", order.Code, "account", acc.EmployeeID, "total", order.Total)
	writeJSON(w, http.StatusCreated, order)
}

// ListMine handles GET /api/v1/orders/me.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	acc := middleware.AccountFromCtx(r.Context())
	if acc == nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.ListByAccount(r.Context(), acc.ID))
}

// ListAll handles GET /api/v1/orders (staff only, order terminal).
func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListAll(r.Context()))
}

type fulfillRequest struct {
	Code string `json:"code"`
}

// Fulfill handles POST /api/v1/orders/fulfill (staff only).
func (h *Handler) Fulfill(w http.ResponseWriter, r *http.Request) {
	var req fulfillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	if req.Code == "" {
		http.Error(w, `{"error":"code is required"}`, http.StatusBadRequest)
		return
	}
	order, err := h.svc.Fulfill(r.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			http.Error(w, `{"error":"order not found"}`, http.StatusNotFound)
		case errors.Is(err, store.ErrAlreadyFulfilled):
			http.Error(w, `{"error":"order already fulfilled"}`, http.StatusConflict)
		default:
			h.log.Error("fulfill order", "error", err)
			http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		}
		return
	}
	h.log.Info("order fulfilled", "code", order.Code)
	writeJSON(w, http.StatusOK, order)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
