package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/result"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/session"
	"go.uber.org/zap"
)

// countingTransport records how many requests actually leave the client.
type countingTransport struct {
	calls int64
	next  http.RoundTripper
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	atomic.AddInt64(&t.calls, 1)
	return t.next.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.Handler, portal session.Portal, token string) (*Client, *countingTransport) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	if token != "" {
		store.SetToken(portal, token)
	}
	spy := &countingTransport{next: http.DefaultTransport}
	c := New(srv.URL, portal, store, zap.NewNop(),
		WithHTTPClient(&http.Client{Transport: spy}))
	return c, spy
}

func TestUnauthorizedShortCircuit(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should never reach the server")
	})
	c, spy := newTestClient(t, handler, session.PortalCustomer, "")

	res := c.Orders(context.Background())
	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Kind != result.KindUnauthorized || res.Message != "Unauthorized" {
		t.Fatalf("expected Unauthorized, got %s %q", res.Kind, res.Message)
	}
	if n := atomic.LoadInt64(&spy.calls); n != 0 {
		t.Fatalf("expected 0 network calls, got %d", n)
	}
}

func TestOrdersDecodesEnvelope(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("missing bearer header, got %q", got)
		}
		if r.URL.Path != "/api/orders" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": []entity.Order{
				{ID: 1, Status: entity.OrderPlaced, TotalPrice: 4975},
			},
		})
	})
	c, spy := newTestClient(t, handler, session.PortalCustomer, "tok123")

	res := c.Orders(context.Background())
	if !res.OK {
		t.Fatalf("expected OK, got %s: %s", res.Kind, res.Message)
	}
	if len(res.Data) != 1 || res.Data[0].TotalPrice != 4975 {
		t.Fatalf("unexpected orders: %+v", res.Data)
	}
	if n := atomic.LoadInt64(&spy.calls); n != 1 {
		t.Fatalf("expected 1 network call, got %d", n)
	}
}

func TestCancelOrderHitsCancelPath(t *testing.T) {
	var gotPath string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    entity.Order{ID: 42, Status: entity.OrderCancelled},
		})
	})
	c, _ := newTestClient(t, handler, session.PortalCustomer, "tok")

	res := c.CancelOrder(context.Background(), 42)
	if !res.OK {
		t.Fatalf("cancel failed: %s", res.Message)
	}
	if gotPath != "/api/orders/42/cancel" {
		t.Fatalf("unexpected path %s", gotPath)
	}
	if res.Data.Status != entity.OrderCancelled {
		t.Fatalf("expected cancelled, got %s", res.Data.Status)
	}
}

func TestServerErrorMapsToKind(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "order not found"})
	})
	c, _ := newTestClient(t, handler, session.PortalCustomer, "tok")

	res := c.Order(context.Background(), 999)
	if res.OK || res.Kind != result.KindNotFound {
		t.Fatalf("expected not_found, got %+v", res)
	}
}

func TestRefundValidationBeforeNetwork(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("validation failures must not reach the server")
	})
	c, spy := newTestClient(t, handler, session.PortalCustomer, "tok")

	if res := c.RequestRefund(context.Background(), 1, "", "proof.jpg"); res.OK || res.Kind != result.KindValidation {
		t.Fatalf("expected validation error for missing reason, got %+v", res)
	}
	if res := c.RequestRefund(context.Background(), 1, "cold food", ""); res.OK || res.Kind != result.KindValidation {
		t.Fatalf("expected validation error for missing proof, got %+v", res)
	}
	if n := atomic.LoadInt64(&spy.calls); n != 0 {
		t.Fatalf("expected 0 network calls, got %d", n)
	}
}

func TestSubmitRemittanceMultipart(t *testing.T) {
	dir := t.TempDir()
	slip := dir + "/slip.jpg"
	if err := os.WriteFile(slip, []byte("jpegdata"), 0o600); err != nil {
		t.Fatal(err)
	}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("not multipart: %v", err)
		}
		if got := r.FormValue("amount"); got != "150000" {
			t.Errorf("expected amount 150000, got %q", got)
		}
		if _, _, err := r.FormFile("slip"); err != nil {
			t.Errorf("missing slip file: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    entity.Remittance{ID: 1, Amount: 150000, Status: entity.RemittancePending},
		})
	})
	c, _ := newTestClient(t, handler, session.PortalRider, "ridertok")

	res := c.SubmitRemittance(context.Background(), 150000, slip)
	if !res.OK {
		t.Fatalf("submit failed: %s", res.Message)
	}
	if res.Data.Status != entity.RemittancePending {
		t.Fatalf("expected pending, got %s", res.Data.Status)
	}
}
