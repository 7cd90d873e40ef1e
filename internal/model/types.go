// Package model defines domain types used by the storefront.
package model

// Product represents a catalog product. Products are seeded at startup and
// never mutated afterwards. Price is a decimal-formatted string with two
// fractional digits; it is never represented as a binary float.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	InStock     bool   `json:"inStock"`
}

// Category represents a product category. ItemCount is denormalized seed
// data and is not recomputed from the product collection.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ItemCount   int    `json:"itemCount"`
}

// CartItem is one product's quantity within one session's cart. At most one
// CartItem exists per (ProductID, SessionID) pair.
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	SessionID string `json:"sessionId"`
}

// CartLine is a CartItem joined with its referenced product, the shape
// returned by cart reads.
type CartLine struct {
	CartItem
	Product Product `json:"product"`
}

// User represents a stored account record. No authentication flow consumes
// it yet; the type completes the record store.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
