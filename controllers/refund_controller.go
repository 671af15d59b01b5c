package controllers

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/resp"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/services"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/utils"
	"github.com/gin-gonic/gin"
)

type RefundController struct {
	service *services.RefundService
}

func NewRefundController(service *services.RefundService) *RefundController {
	return &RefundController{service: service}
}

// POST /api/refunds  (multipart: order_id + reason + proof)
func (rc *RefundController) Create(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	orderID, err := strconv.Atoi(c.PostForm("order_id"))
	if err != nil || orderID <= 0 {
		resp.BadRequest(c, "order_id is required")
		return
	}
	reason := c.PostForm("reason")
	if reason == "" {
		resp.BadRequest(c, "reason is required")
		return
	}

	file, err := c.FormFile("proof")
	if err != nil {
		resp.BadRequest(c, "proof image is required")
		return
	}
	filename := fmt.Sprintf("%d_%d%s", userID, time.Now().UnixNano(), filepath.Ext(file.Filename))
	savePath := filepath.Join("uploads", "refunds", filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		resp.ServerError(c, err)
		return
	}

	refund, err := rc.service.Request(userID, uint(orderID), reason, savePath)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, refund)
}

// GET /api/refunds
func (rc *RefundController) List(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	refunds, err := rc.service.ListForCustomer(userID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, refunds)
}
