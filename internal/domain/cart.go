package domain

// CartView mirrors the server cart. The server copy is authoritative; callers
// re-fetch after every mutation instead of patching this value.
type CartView struct {
	Items []CartItem
}

type CartItem struct {
	ID       string
	Product  *Product
	Quantity int
	Variant  string
}

// ValidItems returns the items whose product still resolves.
func (c CartView) ValidItems() []CartItem {
	items := make([]CartItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Product == nil || item.Product.ID == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}

func (c CartView) Total() float64 {
	var total float64
	for _, item := range c.ValidItems() {
		total += item.Subtotal()
	}
	return total
}

// ItemCount is the number of distinct valid lines, which is what the cart
// badge shows.
func (c CartView) ItemCount() int {
	return len(c.ValidItems())
}

func (c CartView) FindItem(id ProductID) (CartItem, bool) {
	for _, item := range c.ValidItems() {
		if item.Product.ID == id {
			return item, true
		}
	}
	return CartItem{}, false
}

func (i CartItem) Subtotal() float64 {
	if i.Product == nil {
		return 0
	}
	return i.Product.Price * float64(i.Quantity)
}

// CartLine is the payload of an add-to-cart request.
type CartLine struct {
	ProductID ProductID
	Quantity  int
	Variant   string
}
