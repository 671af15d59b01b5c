package controllers

import (
	"strconv"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/resp"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/repository"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	repo *repository.RestaurantRepository
}

func NewRestaurantController(repo *repository.RestaurantRepository) *RestaurantController {
	return &RestaurantController{repo: repo}
}

// GET /api/restaurants
func (rc *RestaurantController) List(c *gin.Context) {
	q := repository.RestaurantQuery{
		SortBy:       c.Query("sort_by"),
		FreeDelivery: c.Query("free_delivery") == "1",
		HasPromos:    c.Query("has_promos") == "1",
		OpenNow:      c.Query("open_now") == "1",
	}
	for _, raw := range c.QueryArray("category") {
		if id, err := strconv.Atoi(raw); err == nil && id > 0 {
			q.Categories = append(q.Categories, uint(id))
		}
	}

	list, err := rc.repo.List(q)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, list)
}

// GET /api/restaurants/:id
func (rc *RestaurantController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := rc.repo.Get(uint(id))
	if err != nil {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, rest)
}
