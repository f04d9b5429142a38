package router

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/niaone/backend/internal/auth"
	"github.com/niaone/backend/internal/catalog"
	"github.com/niaone/backend/internal/dashboard"
	"github.com/niaone/backend/internal/ledger"
	"github.com/niaone/backend/internal/models"
	"github.com/niaone/backend/internal/orders"
	"github.com/niaone/backend/internal/rewards"
	"github.com/niaone/backend/internal/services"
	"github.com/niaone/backend/internal/store"
)

// newTestServer stands up the full route table against a seeded in-memory
// store, the same wiring cmd/api performs.
func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	s := store.New()
	for _, sa := range models.SeedAccounts() {
		hash, err := bcrypt.GenerateFromPassword([]byte(sa.PIN), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash pin: %v", err)
		}
		err = s.AddAccount(&models.Account{
			ID:         uuid.New(),
			Name:       sa.Name,
			EmployeeID: sa.EmployeeID,
			Role:       sa.Role,
			Balance:    sa.Balance,
			Nest:       sa.Nest,
			PINHash:    string(hash),
			JoinedAt:   time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("seed %s: %v", sa.EmployeeID, err)
		}
	}
	s.SetCatalog(models.SeedCatalog())
	s.SetRewards(models.SeedRewards())

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot locate test file")
	}
	validator, err := services.NewValidator(context.Background(), filepath.Join(filepath.Dir(file), "..", "..", "schemas"))
	if err != nil {
		t.Fatalf("load schemas: %v", err)
	}

	authSvc := auth.NewService(s)
	h := Handlers{
		Auth:      auth.NewHandler(authSvc, nil),
		Ledger:    ledger.NewHandler(ledger.NewService(s), validator, nil),
		Catalog:   catalog.NewHandler(catalog.NewService(s), nil),
		Orders:    orders.NewHandler(orders.NewService(s), validator, nil),
		Rewards:   rewards.NewHandler(rewards.NewService(s), validator, nil),
		Dashboard: dashboard.NewHandler(s, nil),
	}
	srv := httptest.NewServer(New(h, authSvc, s))
	t.Cleanup(srv.Close)
	return srv, s
}

func login(t *testing.T, srv *httptest.Server, employeeID, pin string) string {
	t.Helper()
	body := fmt.Sprintf(`{"employee_id":%q,"pin":%q}`, employeeID, pin)
	resp, err := http.Post(srv.URL+"/api/v1/auth/login", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", employeeID, resp.StatusCode)
	}
	var out auth.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return out.Token
}

func do(t *testing.T, srv *httptest.Server, method, path, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func TestStaffAdjustmentFlow(t *testing.T) {
	srv, s := newTestServer(t)
	staffToken := login(t, srv, "EAE001", "0000")

	target, err := s.GetAccountByEmployeeID("NIA003")
	if err != nil {
		t.Fatalf("lookup NIA003: %v", err)
	}

	body := fmt.Sprintf(`{"account_id":%q,"action_code":"JAMBO_ATTENDANCE"}`, target.ID)
	resp := do(t, srv, http.MethodPost, "/api/v1/adjustments", staffToken, body)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var result ledger.AdjustmentResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if result.NewBalance != 82 {
		t.Errorf("expected new balance 82, got %d", result.NewBalance)
	}
}

func TestStaffRoutesForbiddenForResidents(t *testing.T) {
	srv, _ := newTestServer(t)
	residentToken := login(t, srv, "NIA001", "1234")

	for _, path := range []string{"/api/v1/activity", "/api/v1/residents", "/api/v1/metrics", "/api/v1/orders"} {
		resp := do(t, srv, http.MethodGet, path, residentToken, "")
		resp.Body.Close()
		if resp.StatusCode != http.StatusForbidden {
			t.Errorf("GET %s: expected 403, got %d", path, resp.StatusCode)
		}
	}
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	resp := do(t, srv, http.MethodGet, "/api/v1/leaderboard", "", "")
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", resp.StatusCode)
	}
}

func TestResidentJourney(t *testing.T) {
	srv, _ := newTestServer(t)
	token := login(t, srv, "NIA002", "1234")

	// Browse the catalog filtered to studio services.
	resp := do(t, srv, http.MethodGet, "/api/v1/catalog?category=studio", token, "")
	var items []models.CatalogItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	resp.Body.Close()
	if len(items) != 2 {
		t.Fatalf("expected 2 studio items, got %d", len(items))
	}

	// Place an order for the first one.
	orderBody := fmt.Sprintf(`{"lines":[{"item_id":%d,"qty":1}]}`, items[0].ID)
	resp = do(t, srv, http.MethodPost, "/api/v1/orders", token, orderBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("place order: expected 201, got %d", resp.StatusCode)
	}
	var placed models.Order
	if err := json.NewDecoder(resp.Body).Decode(&placed); err != nil {
		t.Fatalf("decode order: %v", err)
	}
	resp.Body.Close()

	// Redeem a chai voucher from the 340 point balance.
	resp = do(t, srv, http.MethodPost, "/api/v1/rewards/redeem", token, `{"reward_id":1}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("redeem: expected 201, got %d", resp.StatusCode)
	}
	var redemption rewards.RedemptionResult
	if err := json.NewDecoder(resp.Body).Decode(&redemption); err != nil {
		t.Fatalf("decode redemption: %v", err)
	}
	resp.Body.Close()
	if redemption.NewBalance != 310 {
		t.Errorf("expected balance 310 after chai voucher, got %d", redemption.NewBalance)
	}

	// Staff fulfill the order by its pickup code.
	staffToken := login(t, srv, "EAE001", "0000")
	fulfillBody := fmt.Sprintf(`{"code":%q}`, placed.Code)
	resp = do(t, srv, http.MethodPost, "/api/v1/orders/fulfill", staffToken, fulfillBody)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("fulfill: expected 200, got %d", resp.StatusCode)
	}

	// Staff scan the voucher, fulfill it, and a repeat scan is rejected.
	voucherCode := redemption.Voucher.Code
	resp = do(t, srv, http.MethodGet, "/api/v1/vouchers/"+voucherCode, staffToken, "")
	var scanned models.Voucher
	if err := json.NewDecoder(resp.Body).Decode(&scanned); err != nil {
		t.Fatalf("decode voucher: %v", err)
	}
	resp.Body.Close()
	if scanned.Status != models.VoucherStatusPending {
		t.Errorf("expected pending voucher at the scanner, got %q", scanned.Status)
	}

	voucherBody := fmt.Sprintf(`{"code":%q}`, voucherCode)
	resp = do(t, srv, http.MethodPost, "/api/v1/vouchers/fulfill", staffToken, voucherBody)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("fulfill voucher: expected 200, got %d", resp.StatusCode)
	}
	resp = do(t, srv, http.MethodPost, "/api/v1/vouchers/fulfill", staffToken, voucherBody)
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("repeat fulfill: expected 409, got %d", resp.StatusCode)
	}
}
