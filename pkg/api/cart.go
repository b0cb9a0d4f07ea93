package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// CartItem is one line of the server-side cart. Price is a snapshot taken
// at add time, not the live product price. Timestamps are passed through
// as the server renders them.
type CartItem struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	Quantity    int       `json:"quantity"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

type cartItemRequest struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
}

// CartItems fetches the full cart for the token's user.
func (c *Client) CartItems(ctx context.Context, token string) ([]CartItem, error) {
	var out []CartItem
	err := c.do(ctx, http.MethodGet, "/cart", token, nil, &out)
	return out, err
}

// AddCartItem puts quantity units of a product into the cart.
func (c *Client) AddCartItem(ctx context.Context, token string, productID uuid.UUID, quantity int) error {
	return c.do(ctx, http.MethodPost, "/cart", token, cartItemRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

// UpdateCartItem replaces the quantity of a product already in the cart.
func (c *Client) UpdateCartItem(ctx context.Context, token string, productID uuid.UUID, quantity int) error {
	return c.do(ctx, http.MethodPut, "/cart", token, cartItemRequest{
		ProductID: productID,
		Quantity:  quantity,
	}, nil)
}

// RemoveCartItem deletes one product from the cart.
func (c *Client) RemoveCartItem(ctx context.Context, token string, productID uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/cart/"+productID.String(), token, nil, nil)
}

// ClearCart deletes every item in the cart.
func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/cart", token, nil, nil)
}
