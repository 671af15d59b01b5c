package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/result"
)

func (c *Client) Favorites(ctx context.Context) result.Result[[]entity.Favorite] {
	return doJSON[[]entity.Favorite](ctx, c, http.MethodGet, "/api/favorites", nil)
}

func (c *Client) AddFavorite(ctx context.Context, restaurantID uint) result.Result[entity.Favorite] {
	return doJSON[entity.Favorite](ctx, c, http.MethodPost, "/api/favorites", map[string]uint{
		"restaurant_id": restaurantID,
	})
}

func (c *Client) RemoveFavorite(ctx context.Context, id uint) result.Result[struct{}] {
	return doJSON[struct{}](ctx, c, http.MethodDelete, fmt.Sprintf("/api/favorites/%d", id), nil)
}
