package controllers

import (
	"errors"
	"strconv"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/resp"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/services"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

// GET /api/cart
func (cc *CartController) Get(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	cart, err := cc.service.Get(userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// POST /api/cart
func (cc *CartController) Add(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	var in services.AddItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	cart, err := cc.service.Add(userID, &in)
	if err != nil {
		if errors.Is(err, services.ErrCartLocked) {
			resp.Conflict(c, "cart already has items from another restaurant")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}

// PUT /api/cart/:itemID
func (cc *CartController) UpdateItem(c *gin.Context) {
	itemID, _ := strconv.Atoi(c.Param("itemID"))
	userID := utils.CurrentUserID(c)

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	cart, err := cc.service.UpdateQty(userID, uint(itemID), req.Quantity)
	if err != nil {
		resp.NotFound(c, "cart item not found")
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/cart/:itemID
func (cc *CartController) RemoveItem(c *gin.Context) {
	itemID, _ := strconv.Atoi(c.Param("itemID"))
	userID := utils.CurrentUserID(c)

	cart, err := cc.service.RemoveItem(userID, uint(itemID))
	if err != nil {
		resp.NotFound(c, "cart item not found")
		return
	}
	resp.OK(c, cart)
}

// DELETE /api/cart
func (cc *CartController) Clear(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	cart, err := cc.service.Clear(userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, cart)
}
