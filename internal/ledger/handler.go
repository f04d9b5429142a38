package ledger

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/niaone/backend/internal/middleware"
	"github.com/niaone/backend/internal/services"
	"github.com/niaone/backend/internal/store"
)

// DefaultActivityLimit bounds the staff activity feed when no limit is given.
const DefaultActivityLimit = 50

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

type adjustmentRequest struct {
	AccountID  string `json:"account_id"`
	ActionCode string `json:"action_code"`
	Note       string `json:"note"`
}

// Adjust handles POST /api/v1/adjustments (staff only).
func (h *Handler) Adjust(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, `{"error":"failed to read body"}`, http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), "adjustment", body); err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	var req adjustmentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		http.Error(w, `{"error":"invalid account_id"}`, http.StatusBadRequest)
		return
	}
	result, err := h.svc.AdjustBalance(r.Context(), accountID, req.ActionCode, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownAction):
			http.Error(w, `{"error":"unknown action code"}`, http.StatusBadRequest)
		case errors.Is(err, store.ErrNotFound):
			http.Error(w, `{"error":"account not found"}`, http.StatusNotFound)
		default:
			h.log.Error("adjust balance", "error", err)
			http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		}
		return
	}
	h.log.Info("balance adjusted",
		"account", result.Account.EmployeeID,
		"action", req.ActionCode,
		"points", result.Entry.Points,
		"balance", result.NewBalance)
	writeJSON(w, http.StatusOK, result)
}

type onboardRequest struct {
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
	Nest       string `json:"nest"`
}

// Onboard handles POST /api/v1/residents (staff only).
func (h *Handler) Onboard(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, `{"error":"failed to read body"}`, http.StatusBadRequest)
		return
	}
	if err := h.validator.Validate(r.Context(), "resident", body); err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
			return
		}
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	var req onboardRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}
	acc, err := h.svc.OnboardResident(r.Context(), req.Name, req.EmployeeID, req.Nest)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, `{"error":"name and employee_id are required"}`, http.StatusBadRequest)
		case errors.Is(err, store.ErrDuplicateCode):
			http.Error(w, `{"error":"employee_id already exists"}`, http.StatusConflict)
		default:
			h.log.Error("onboard resident", "error", err)
			http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		}
		return
	}
	h.log.Info("resident onboarded", "account", acc.EmployeeID)
	writeJSON(w, http.StatusCreated, acc)
}

// Actions handles GET /api/v1/actions.
func (h *Handler) Actions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Actions(r.Context()))
}

// Leaderboard handles GET /api/v1/leaderboard.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.RankResidents(r.Context()))
}

// Activity handles GET /api/v1/activity (staff only).
func (h *Handler) Activity(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Activity(r.Context(), limitParam(r)))
}

// MyActivity handles GET /api/v1/activity/me.
func (h *Handler) MyActivity(w http.ResponseWriter, r *http.Request) {
	acc := middleware.AccountFromCtx(r.Context())
	if acc == nil {
		http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.ActivityByAccount(r.Context(), acc.ID, limitParam(r)))
}

func limitParam(r *http.Request) int {
	limit := DefaultActivityLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	return limit
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
