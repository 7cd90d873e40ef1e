package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/willowmart/storefront/internal/cart"
	"github.com/willowmart/storefront/internal/config"
	httpopenapi "github.com/willowmart/storefront/internal/http/openapi"
	"github.com/willowmart/storefront/internal/session"
	"github.com/willowmart/storefront/internal/store"
)

type App struct {
	Cfg     config.Config
	Store   *store.Store
	Cart    *cart.Service
	started time.Time
}

func NewApp(cfg config.Config, st *store.Store, c *cart.Service) *App {
	return &App{Cfg: cfg, Store: st, Cart: c, started: time.Now()}
}

// addCartRequest is the POST /cart body. Quantity is optional and defaults
// to 1; SessionID is optional and falls back to a client-address key.
type addCartRequest struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
	SessionID string `json:"sessionId"`
}

// updateCartRequest is the PUT /cart/{id} body.
type updateCartRequest struct {
	Quantity *int `json:"quantity"`
}

type confirmation struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) productsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	writeJSON(w, http.StatusOK, a.Store.Products())
}

// productsSubtreeHandler dispatches /products/trending,
// /products/category/{name}, and /products/{id}.
func (a *App) productsSubtreeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/products/")
	switch {
	case rest == "":
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
	case rest == "trending":
		writeJSON(w, http.StatusOK, a.Store.TrendingProducts(a.Cfg.TrendingLimit))
	case strings.HasPrefix(rest, "category/"):
		name := strings.TrimPrefix(rest, "category/")
		writeJSON(w, http.StatusOK, a.Store.ProductsByCategory(name))
	default:
		p, ok := a.Store.Product(rest)
		if !ok {
			WriteJSONError(w, http.StatusNotFound, "product_not_found", "")
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func (a *App) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	writeJSON(w, http.StatusOK, a.Store.Categories())
}

// cartHandler serves the /cart collection: GET lists the session's joined
// cart, POST adds or merges a line, DELETE clears the session's cart.
func (a *App) cartHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		sid := session.FromRequest(r.URL.Query().Get("sessionId"), r)
		lines, err := a.Cart.Items(sid)
		if err != nil {
			WriteAppError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, lines)
	case http.MethodPost:
		a.addToCartHandler(w, r)
	case http.MethodDelete:
		sid := session.FromRequest(r.URL.Query().Get("sessionId"), r)
		a.Cart.Clear(sid)
		writeJSON(w, http.StatusOK, confirmation{Message: "Cart cleared"})
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	}
}

func (a *App) addToCartHandler(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		WriteJSONError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", "expected application/json")
		return
	}
	var req addCartRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.ProductID == "" {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "productId is required")
		return
	}
	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	sid := session.FromRequest(req.SessionID, r)
	item, err := a.Cart.Add(sid, req.ProductID, qty)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// cartItemHandler serves /cart/summary and /cart/{id}.
func (a *App) cartItemHandler(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/cart/")
	if rest == "" {
		WriteJSONError(w, http.StatusNotFound, "not_found", "")
		return
	}
	if rest == "summary" {
		a.cartSummaryHandler(w, r)
		return
	}
	switch r.Method {
	case http.MethodPut:
		a.updateCartItemHandler(w, r, rest)
	case http.MethodDelete:
		a.Cart.Remove(rest)
		writeJSON(w, http.StatusOK, confirmation{Message: "Item removed from cart"})
	default:
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
	}
}

func (a *App) updateCartItemHandler(w http.ResponseWriter, r *http.Request, id string) {
	var req updateCartRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Quantity == nil {
		WriteJSONError(w, http.StatusBadRequest, "validation_error", "quantity is required")
		return
	}
	item, removed, err := a.Cart.UpdateQuantity(id, *req.Quantity)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	if removed {
		writeJSON(w, http.StatusOK, confirmation{Message: "Item removed from cart"})
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (a *App) cartSummaryHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", "")
		return
	}
	sid := session.FromRequest(r.URL.Query().Get("sessionId"), r)
	sum, err := a.Cart.Summary(sid)
	if err != nil {
		WriteAppError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sum)
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) metricsHandler(w http.ResponseWriter, r *http.Request) {
	users, products, categories, cartItems := a.Store.Counts()
	m := map[string]any{
		"users":      users,
		"products":   products,
		"categories": categories,
		"cart_items": cartItems,
		"uptime_sec": time.Since(a.started).Seconds(),
	}
	writeJSON(w, http.StatusOK, m)
}

func (a *App) openapiHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(httpopenapi.YAML)
}

func (a *App) docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	html := `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui'
      });
    </script>
  </body>
</html>`
	_, _ = w.Write([]byte(html))
}
