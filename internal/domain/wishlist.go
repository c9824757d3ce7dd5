package domain

import "strings"

// WishlistEntry is a snapshot of a product taken when it was wishlisted.
// It is not refreshed from the catalog and may go stale.
type WishlistEntry struct {
	ID    ProductID `json:"_id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
	Image string    `json:"image,omitempty"`
	Stock int       `json:"stock"`
}

func EntryFromProduct(p Product) WishlistEntry {
	return WishlistEntry{
		ID:    p.ID,
		Name:  p.Name,
		Price: p.Price,
		Image: p.Image,
		Stock: p.Stock,
	}
}

// Wishlist holds at most one entry per product ID, in insertion order.
type Wishlist []WishlistEntry

// Trimmed returns id without surrounding whitespace.
func (id ProductID) Trimmed() ProductID {
	return ProductID(strings.TrimSpace(string(id)))
}

func (w Wishlist) Contains(id ProductID) bool {
	return w.index(id) >= 0
}

// With returns w plus entry, or w unchanged when the ID is already present.
// The ID is stored trimmed.
func (w Wishlist) With(entry WishlistEntry) (Wishlist, bool) {
	entry.ID = entry.ID.Trimmed()
	if entry.ID == "" || w.Contains(entry.ID) {
		return w, false
	}

	out := make(Wishlist, 0, len(w)+1)
	out = append(out, w...)
	return append(out, entry), true
}

// Without returns w minus the entry for id, or w unchanged when absent.
func (w Wishlist) Without(id ProductID) (Wishlist, bool) {
	i := w.index(id.Trimmed())
	if i < 0 {
		return w, false
	}

	out := make(Wishlist, 0, len(w)-1)
	out = append(out, w[:i]...)
	return append(out, w[i+1:]...), true
}

// Normalize drops entries with empty IDs and later duplicates.
func (w Wishlist) Normalize() Wishlist {
	out := make(Wishlist, 0, len(w))
	seen := make(map[ProductID]struct{}, len(w))
	for _, entry := range w {
		id := entry.ID.Trimmed()
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		entry.ID = id
		out = append(out, entry)
	}
	return out
}

func (w Wishlist) index(id ProductID) int {
	for i := range w {
		if w[i].ID == id {
			return i
		}
	}
	return -1
}
