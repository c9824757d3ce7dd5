package storeapi

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/bnema/storefront-cli/internal/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string     `json:"accessToken" validate:"required"`
	User        userSchema `json:"user"`
}

type userSchema struct {
	ID    string `json:"_id" validate:"required_without=AltID"`
	AltID string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s userSchema) toDomain() domain.User {
	id := s.ID
	if id == "" {
		id = s.AltID
	}

	return domain.User{
		ID:    domain.UserID(id),
		Name:  strings.TrimSpace(s.Name),
		Email: strings.TrimSpace(s.Email),
		Role:  domain.Role(strings.TrimSpace(s.Role)),
	}
}

type productSchema struct {
	ID          string   `json:"_id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"gte=0"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Image       string   `json:"image"`
	Variants    []string `json:"variants"`
}

func (s productSchema) toDomain() domain.Product {
	return domain.Product{
		ID:          domain.ProductID(s.ID),
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		Category:    s.Category,
		Stock:       s.Stock,
		Image:       s.Image,
		Variants:    s.Variants,
	}
}

type createProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image,omitempty"`
}

func toCreateProductRequest(p domain.NewProduct) createProductRequest {
	return createProductRequest{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Stock:       p.Stock,
		Image:       p.Image,
	}
}

type cartSchema struct {
	Items []cartItemSchema `json:"items" validate:"dive"`
}

// cartItemSchema leaves Product unvalidated: lines whose product was
// deleted are dropped by CartView.ValidItems instead of failing the cart.
type cartItemSchema struct {
	ID       string         `json:"_id"`
	Product  *productSchema `json:"product" validate:"-"`
	Quantity int            `json:"quantity" validate:"gte=0"`
	Variant  string         `json:"variant"`
}

func (s cartSchema) toDomain() domain.CartView {
	items := make([]domain.CartItem, 0, len(s.Items))
	for _, item := range s.Items {
		var product *domain.Product
		if item.Product != nil {
			p := item.Product.toDomain()
			product = &p
		}
		items = append(items, domain.CartItem{
			ID:       item.ID,
			Product:  product,
			Quantity: item.Quantity,
			Variant:  item.Variant,
		})
	}

	return domain.CartView{Items: items}
}

type addCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Variant   string `json:"variant,omitempty"`
}

type checkoutResponse struct {
	URL string `json:"url" validate:"required,url"`
}

type orderSchema struct {
	ID        string            `json:"_id" validate:"required"`
	UserID    referenceID       `json:"userId"`
	Status    string            `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	Items     []orderItemSchema `json:"items" validate:"dive"`
	Total     float64           `json:"total"`
}

type orderItemSchema struct {
	Product  referenceID `json:"product"`
	Name     string      `json:"name"`
	Quantity int         `json:"quantity" validate:"gte=0"`
	Price    float64     `json:"price"`
}

func (s orderSchema) toDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, domain.OrderItem{
			ProductID: domain.ProductID(item.Product),
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return domain.Order{
		ID:        s.ID,
		UserID:    domain.UserID(s.UserID),
		Status:    s.Status,
		CreatedAt: s.CreatedAt,
		Items:     items,
		Total:     s.Total,
	}
}

// referenceID decodes either a bare ID string or a populated document
// carrying "_id".
type referenceID string

func (r *referenceID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*r = ""
		return nil
	}

	if trimmed[0] == '"' {
		var id string
		if err := json.Unmarshal(trimmed, &id); err != nil {
			return err
		}
		*r = referenceID(id)
		return nil
	}

	var doc struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return err
	}
	*r = referenceID(doc.ID)
	return nil
}
