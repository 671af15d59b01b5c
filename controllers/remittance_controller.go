package controllers

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/money"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/resp"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/services"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/utils"
	"github.com/gin-gonic/gin"
)

type RemittanceController struct {
	service *services.RemittanceService
}

func NewRemittanceController(service *services.RemittanceService) *RemittanceController {
	return &RemittanceController{service: service}
}

// GET /api/rider/remittance/summary
func (rc *RemittanceController) Summary(c *gin.Context) {
	riderID := utils.CurrentUserID(c)
	summary, err := rc.service.Summary(riderID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}

// GET /api/rider/remittance/history
func (rc *RemittanceController) History(c *gin.Context) {
	riderID := utils.CurrentUserID(c)
	history, err := rc.service.History(riderID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, history)
}

// POST /api/rider/remittance/submit  (multipart: amount + slip)
func (rc *RemittanceController) Submit(c *gin.Context) {
	riderID := utils.CurrentUserID(c)

	amount, err := strconv.ParseInt(c.PostForm("amount"), 10, 64)
	if err != nil || amount <= 0 {
		resp.BadRequest(c, "amount must be a positive integer (centavos)")
		return
	}

	file, err := c.FormFile("slip")
	if err != nil {
		resp.BadRequest(c, "deposit slip is required")
		return
	}
	filename := fmt.Sprintf("%d_%d%s", riderID, time.Now().UnixNano(), filepath.Ext(file.Filename))
	savePath := filepath.Join("uploads", "remittances", filename)
	if err := c.SaveUploadedFile(file, savePath); err != nil {
		resp.ServerError(c, err)
		return
	}

	remit, err := rc.service.Submit(riderID, money.Centavos(amount), savePath)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, remit)
}
