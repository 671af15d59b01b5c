package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/result"
)

// Cart mutations are all server round-trips; there is no optimistic
// cart state. Portals call Cart() again after each mutation.

type AddCartItemIn struct {
	RestaurantID uint   `json:"restaurant_id"`
	MenuItemID   uint   `json:"menu_item_id"`
	Quantity     int    `json:"quantity"`
	Note         string `json:"note,omitempty"`
}

func (c *Client) Cart(ctx context.Context) result.Result[entity.Cart] {
	return doJSON[entity.Cart](ctx, c, http.MethodGet, "/api/cart", nil)
}

func (c *Client) AddCartItem(ctx context.Context, in AddCartItemIn) result.Result[entity.Cart] {
	return doJSON[entity.Cart](ctx, c, http.MethodPost, "/api/cart", in)
}

func (c *Client) UpdateCartItem(ctx context.Context, itemID uint, quantity int) result.Result[entity.Cart] {
	return doJSON[entity.Cart](ctx, c, http.MethodPut, fmt.Sprintf("/api/cart/%d", itemID), map[string]int{
		"quantity": quantity,
	})
}

func (c *Client) RemoveCartItem(ctx context.Context, itemID uint) result.Result[entity.Cart] {
	return doJSON[entity.Cart](ctx, c, http.MethodDelete, fmt.Sprintf("/api/cart/%d", itemID), nil)
}

func (c *Client) ClearCart(ctx context.Context) result.Result[entity.Cart] {
	return doJSON[entity.Cart](ctx, c, http.MethodDelete, "/api/cart", nil)
}
