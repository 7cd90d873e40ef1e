package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/willowmart/storefront/internal/cart"
	"github.com/willowmart/storefront/internal/config"
	httpapi "github.com/willowmart/storefront/internal/http"
	"github.com/willowmart/storefront/internal/model"
	"github.com/willowmart/storefront/internal/obs"
	"github.com/willowmart/storefront/internal/session"
	"github.com/willowmart/storefront/internal/store"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	obs.InitLogger()
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	st := store.New()
	st.Seed()
	app := httpapi.NewApp(cfg, st, cart.New(st, cfg.TaxRateDecimal()))
	srv := httptest.NewServer(httpapi.NewRouter(app))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, v any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d", url, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
}

func postJSON(t *testing.T, url, body string, v any) int {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if v != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return resp.StatusCode
}

func do(t *testing.T, method, url, body string) int {
	t.Helper()
	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest(method, url, nil)
	} else {
		req, err = http.NewRequest(method, url, bytes.NewBufferString(body))
	}
	if err != nil {
		t.Fatal(err)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestShoppingJourney(t *testing.T) {
	srv := newServer(t)
	sid := session.Mint()

	// browse the catalog
	var products []model.Product
	getJSON(t, srv.URL+"/products", &products)
	if len(products) != 20 {
		t.Fatalf("expected 20 products, got %d", len(products))
	}
	var trending []model.Product
	getJSON(t, srv.URL+"/products/trending", &trending)
	if len(trending) != 8 {
		t.Fatalf("expected 8 trending products, got %d", len(trending))
	}
	var categories []model.Category
	getJSON(t, srv.URL+"/categories", &categories)
	if len(categories) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(categories))
	}

	// cart starts empty
	var lines []model.CartLine
	getJSON(t, srv.URL+"/cart?sessionId="+sid, &lines)
	if len(lines) != 0 {
		t.Fatalf("expected empty cart, got %+v", lines)
	}

	// add two products, the first twice
	var first model.CartItem
	body := fmt.Sprintf(`{"productId":%q,"quantity":1,"sessionId":%q}`, products[0].ID, sid)
	if code := postJSON(t, srv.URL+"/cart", body, &first); code != http.StatusOK {
		t.Fatalf("add: expected 200, got %d", code)
	}
	body = fmt.Sprintf(`{"productId":%q,"quantity":2,"sessionId":%q}`, products[0].ID, sid)
	var merged model.CartItem
	if code := postJSON(t, srv.URL+"/cart", body, &merged); code != http.StatusOK {
		t.Fatalf("merge add: expected 200, got %d", code)
	}
	if merged.ID != first.ID || merged.Quantity != 3 {
		t.Fatalf("expected merge into %q with quantity 3, got %+v", first.ID, merged)
	}
	body = fmt.Sprintf(`{"productId":%q,"sessionId":%q}`, products[1].ID, sid)
	if code := postJSON(t, srv.URL+"/cart", body, nil); code != http.StatusOK {
		t.Fatalf("second add: expected 200, got %d", code)
	}

	getJSON(t, srv.URL+"/cart?sessionId="+sid, &lines)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Product.Name != products[0].Name {
		t.Fatalf("join mismatch: %+v", lines[0])
	}

	// summary reflects quantities and exact decimal money
	var sum cart.Summary
	getJSON(t, srv.URL+"/cart/summary?sessionId="+sid, &sum)
	if sum.Count != 4 {
		t.Fatalf("expected count 4, got %d", sum.Count)
	}
	if !strings.Contains(sum.Subtotal, ".") || len(sum.Subtotal)-strings.Index(sum.Subtotal, ".") != 3 {
		t.Fatalf("subtotal not a 2-decimal string: %q", sum.Subtotal)
	}

	// drop the second product via quantity 0
	if code := do(t, http.MethodPut, srv.URL+"/cart/"+lines[1].ID, `{"quantity":0}`); code != http.StatusOK {
		t.Fatalf("zero update: expected 200, got %d", code)
	}
	getJSON(t, srv.URL+"/cart?sessionId="+sid, &lines)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line after removal, got %d", len(lines))
	}

	// clear and verify empty
	if code := do(t, http.MethodDelete, srv.URL+"/cart?sessionId="+sid, ""); code != http.StatusOK {
		t.Fatalf("clear: expected 200, got %d", code)
	}
	getJSON(t, srv.URL+"/cart?sessionId="+sid, &lines)
	if len(lines) != 0 {
		t.Fatalf("expected empty cart after clear, got %+v", lines)
	}
	getJSON(t, srv.URL+"/cart/summary?sessionId="+sid, &sum)
	if sum.Count != 0 || sum.Total != "0.00" {
		t.Fatalf("expected zero summary, got %+v", sum)
	}
}

func TestSessionsDoNotInterfere(t *testing.T) {
	srv := newServer(t)
	a := session.Mint()
	b := session.Mint()

	var products []model.Product
	getJSON(t, srv.URL+"/products", &products)

	postJSON(t, srv.URL+"/cart", fmt.Sprintf(`{"productId":%q,"quantity":1,"sessionId":%q}`, products[0].ID, a), nil)
	postJSON(t, srv.URL+"/cart", fmt.Sprintf(`{"productId":%q,"quantity":5,"sessionId":%q}`, products[0].ID, b), nil)

	var linesA, linesB []model.CartLine
	getJSON(t, srv.URL+"/cart?sessionId="+a, &linesA)
	getJSON(t, srv.URL+"/cart?sessionId="+b, &linesB)
	if len(linesA) != 1 || linesA[0].Quantity != 1 {
		t.Fatalf("session a polluted: %+v", linesA)
	}
	if len(linesB) != 1 || linesB[0].Quantity != 5 {
		t.Fatalf("session b polluted: %+v", linesB)
	}

	if code := do(t, http.MethodDelete, srv.URL+"/cart?sessionId="+a, ""); code != http.StatusOK {
		t.Fatalf("clear: expected 200, got %d", code)
	}
	getJSON(t, srv.URL+"/cart?sessionId="+b, &linesB)
	if len(linesB) != 1 {
		t.Fatalf("clearing a wiped b: %+v", linesB)
	}
}
