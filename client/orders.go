package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/result"
)

type PlaceOrderIn struct {
	RestaurantID  uint   `json:"restaurant_id"`
	AddressID     uint   `json:"address_id"`
	PaymentMethod string `json:"payment"`
	VoucherCode   string `json:"voucher_code,omitempty"`
}

func (c *Client) Orders(ctx context.Context) result.Result[[]entity.Order] {
	return doJSON[[]entity.Order](ctx, c, http.MethodGet, "/api/orders", nil)
}

func (c *Client) Order(ctx context.Context, id uint) result.Result[entity.Order] {
	return doJSON[entity.Order](ctx, c, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil)
}

// PlaceOrder converts the server-side cart into an order.
func (c *Client) PlaceOrder(ctx context.Context, in PlaceOrderIn) result.Result[entity.Order] {
	return doJSON[entity.Order](ctx, c, http.MethodPost, "/api/orders", in)
}

// CancelOrder is fire-and-forget: callers refetch the order list rather
// than patching local state.
func (c *Client) CancelOrder(ctx context.Context, id uint) result.Result[entity.Order] {
	return doJSON[entity.Order](ctx, c, http.MethodPost, fmt.Sprintf("/api/orders/%d/cancel", id), nil)
}
