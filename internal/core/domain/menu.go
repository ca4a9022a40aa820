package domain

import "time"

// Shop is read-only from the pipeline's perspective; only its
// last_order_number column is touched, and only through the fallback
// sequence.
type Shop struct {
	ID      string
	Name    string
	Phone   string // chat contact address, unique
	Pincode string
	Online  bool
}

// Variant is a priced option under a menu item.
type Variant struct {
	Code      string
	Label     string
	Price     int64 // paise
	Available bool
}

// MenuItem is a catalog entry. Listing order matters: the letter a
// customer types (A, B, C...) is a position into the shop's available
// items in the order the shop lists them.
type MenuItem struct {
	ID         string
	ShopID     string
	Name       string
	Price      int64 // paise
	Available  bool
	ExternalID string // short printed code, e.g. "K7KQ2P"
	Variants   []Variant
	CreatedAt  time.Time
}
