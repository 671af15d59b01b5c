package controllers

import (
	"errors"
	"strconv"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/resp"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/services"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// GET /api/orders
func (oc *OrderController) List(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	orders, err := oc.service.ListForCustomer(userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	userID := utils.CurrentUserID(c)

	order, err := oc.service.Get(userID, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.Forbidden(c, err.Error())
		return
	}
	resp.OK(c, order)
}

// POST /api/orders
func (oc *OrderController) Create(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	var in services.PlaceOrderIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	order, err := oc.service.Place(userID, &in)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// POST /api/orders/:id/cancel
func (oc *OrderController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	userID := utils.CurrentUserID(c)

	order, err := oc.service.CustomerCancel(userID, uint(id))
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.Conflict(c, "order can no longer be cancelled")
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.Forbidden(c, err.Error())
		return
	}
	resp.OK(c, order)
}

// PATCH /api/vendor/orders/:id/accept
func (oc *OrderController) VendorAccept(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := oc.service.VendorAccept(uint(id)); err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			resp.Conflict(c, "order is not awaiting acceptance")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"order_id": id, "order_status": "preparing"})
}
