package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/result"
)

func (c *Client) Addresses(ctx context.Context) result.Result[[]entity.Address] {
	return doJSON[[]entity.Address](ctx, c, http.MethodGet, "/api/addresses", nil)
}

func (c *Client) CreateAddress(ctx context.Context, in entity.Address) result.Result[entity.Address] {
	return doJSON[entity.Address](ctx, c, http.MethodPost, "/api/addresses", in)
}

func (c *Client) UpdateAddress(ctx context.Context, id uint, in entity.Address) result.Result[entity.Address] {
	return doJSON[entity.Address](ctx, c, http.MethodPut, fmt.Sprintf("/api/addresses/%d", id), in)
}

func (c *Client) DeleteAddress(ctx context.Context, id uint) result.Result[struct{}] {
	return doJSON[struct{}](ctx, c, http.MethodDelete, fmt.Sprintf("/api/addresses/%d", id), nil)
}

// SelectAddress remembers the delivery address locally; nothing is sent
// to the server until an order is placed.
func (c *Client) SelectAddress(id uint) error {
	return c.session.SetSelectedAddressID(id)
}

func (c *Client) SelectedAddress() uint {
	return c.session.SelectedAddressID()
}
