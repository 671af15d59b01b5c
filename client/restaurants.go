package client

import (
	"context"
	"net/http"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/filter"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/result"
)

// Restaurants runs the listing search with a committed filter draft.
// All matching/sorting happens server-side.
func (c *Client) Restaurants(ctx context.Context, f filter.Draft) result.Result[[]entity.Restaurant] {
	path := "/api/restaurants"
	if q := f.Query().Encode(); q != "" {
		path += "?" + q
	}
	return doJSON[[]entity.Restaurant](ctx, c, http.MethodGet, path, nil)
}
