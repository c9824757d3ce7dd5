package domain

import "time"

type Order struct {
	ID        string
	UserID    UserID
	Status    string
	CreatedAt time.Time
	Items     []OrderItem
	Total     float64
}

type OrderItem struct {
	ProductID ProductID
	Name      string
	Quantity  int
	Price     float64
}

// ShortID is the last six characters of the order ID.
func (o Order) ShortID() string {
	if len(o.ID) <= 6 {
		return o.ID
	}
	return o.ID[len(o.ID)-6:]
}

// ShortUserID is the last four characters of the buyer ID.
func (o Order) ShortUserID() string {
	id := string(o.UserID)
	if len(id) <= 4 {
		return id
	}
	return id[len(id)-4:]
}

func (o Order) ItemCount() int {
	return len(o.Items)
}
