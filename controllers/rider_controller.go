package controllers

import (
	"errors"
	"strconv"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/resp"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/services"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/utils"
	"github.com/gin-gonic/gin"
)

type RiderController struct {
	riders *services.RiderService
	orders *services.OrderService
}

func NewRiderController(riders *services.RiderService, orders *services.OrderService) *RiderController {
	return &RiderController{riders: riders, orders: orders}
}

// GET /api/riders/orders
func (rc *RiderController) Orders(c *gin.Context) {
	riderID := utils.CurrentUserID(c)
	orders, err := rc.riders.OrderFeed(riderID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// POST /api/riders/orders/accept
func (rc *RiderController) Accept(c *gin.Context) {
	riderID := utils.CurrentUserID(c)

	var req struct {
		OrderID uint `json:"order_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "order_id is required")
		return
	}

	order, err := rc.orders.RiderAccept(riderID, req.OrderID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.Conflict(c, "order already taken")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/riders/orders/:id/complete
func (rc *RiderController) Complete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	riderID := utils.CurrentUserID(c)

	if err := rc.orders.RiderComplete(riderID, uint(id)); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.Conflict(c, "order is not out for delivery")
			return
		}
		resp.Forbidden(c, err.Error())
		return
	}
	order, err := rc.orders.Get(riderID, uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, order)
}

// POST /api/riders/location
func (rc *RiderController) Location(c *gin.Context) {
	riderID := utils.CurrentUserID(c)

	var req entity.RiderLocation
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	loc, err := rc.riders.ReportLocation(riderID, req.Lat, req.Lng)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, loc)
}
