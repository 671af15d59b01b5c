package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/result"
	"go.uber.org/zap"
)

// RiderOrders lists orders available for pickup plus the rider's active
// deliveries. The rider home screen polls this.
func (c *Client) RiderOrders(ctx context.Context) result.Result[[]entity.Order] {
	return doJSON[[]entity.Order](ctx, c, http.MethodGet, "/api/riders/orders", nil)
}

// AcceptOrder claims an order for delivery. First accept wins; a
// conflict comes back as a validation error and the rider refetches.
func (c *Client) AcceptOrder(ctx context.Context, orderID uint) result.Result[entity.Order] {
	return doJSON[entity.Order](ctx, c, http.MethodPost, "/api/riders/orders/accept", map[string]uint{
		"order_id": orderID,
	})
}

// CompleteOrder marks an active delivery as delivered.
func (c *Client) CompleteOrder(ctx context.Context, orderID uint) result.Result[entity.Order] {
	return doJSON[entity.Order](ctx, c, http.MethodPost, fmt.Sprintf("/api/riders/orders/%d/complete", orderID), nil)
}

// ReportLocation pushes the rider's GPS fix and caches it locally so
// the map has a starting point after an app restart.
func (c *Client) ReportLocation(ctx context.Context, loc entity.RiderLocation) result.Result[entity.RiderLocation] {
	out := doJSON[entity.RiderLocation](ctx, c, http.MethodPost, "/api/riders/location", loc)
	if out.OK {
		if err := c.session.SetLastRiderLocation(out.Data); err != nil {
			c.log.Warn("could not cache rider location", zap.Error(err))
		}
	}
	return out
}
