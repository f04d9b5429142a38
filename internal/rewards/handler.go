package rewards

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

// List handles GET /api/v1/rewards.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

type redeemRequest struct {
	RewardID int `json:"reward_id"`
}

// Redeem handles POST /api/v1/rewards/redeem.
func (h *Handler) Redeem(w http.ResponseWriter, r *http.Request) {
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
	if err := h.validator.Validate(r.Context(), "redeem", body); err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	var req redeemRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	result, err := h.svc.Redeem(r.Context(), acc.ID, req.RewardID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			http.Error(w, `{"error":"reward not found"}`, http.StatusNotFound)
		case errors.Is(err, store.ErrInsufficientPoints):
			http.Error(w, `{"error":"insufficient points"}`, http.StatusUnprocessableEntity)
		default:
			h.log.Error("redeem reward", "error", err)
			http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		}
		return
	}
	h.log.Info("reward redeemed",
		"account", acc.EmployeeID,
		"reward", result.Voucher.RewardName,
		"balance", result.NewBalance)
	writeJSON(w, http.StatusCreated, result)
}

// LookupVoucher handles GET /api/v1/vouchers/{code} (staff only, scanner).
// The scanner shows the voucher before staff confirm fulfillment.
func (h *Handler) LookupVoucher(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.Lookup(r.Context(), r.PathValue("code"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, `{"error":"voucher not found"}`, http.StatusNotFound)
			return
		}
		h.log.Error("lookup voucher", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

type fulfillRequest struct {
	Code string `json:"code"`
}

// FulfillVoucher handles POST /api/v1/vouchers/fulfill (staff only).
func (h *Handler) FulfillVoucher(w http.ResponseWriter, r *http.Request) {
	var req fulfillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	if req.Code == "" {
		http.Error(w, `{"error":"code is required"}`, http.StatusBadRequest)
		return
	}
	v, err := h.svc.Fulfill(r.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			http.Error(w, `{"error":"voucher not found"}`, http.StatusNotFound)
		case errors.Is(err, store.ErrAlreadyFulfilled):
			http.Error(w, `{"error":"voucher already fulfilled"}`, http.StatusConflict)
		default:
			h.log.Error("fulfill voucher", "error", err)
			http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		}
		return
	}
	h.log.Info("voucher fulfilled", "code", v.Code, "reward", v.RewardName)
	writeJSON(w, http.StatusOK, v)
}

// MyVouchers handles GET /api/v1/vouchers/me.
func (h *Handler) MyVouchers(w http.ResponseWriter, r *http.Request) {
	acc := middleware.AccountFromCtx(r.Context())
	if acc == nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.VouchersByAccount(r.Context(), acc.ID))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
