package controllers

import (
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/resp"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type VoucherController struct {
	db *gorm.DB
}

func NewVoucherController(db *gorm.DB) *VoucherController {
	return &VoucherController{db: db}
}

// GET /api/vouchers
func (vc *VoucherController) List(c *gin.Context) {
	vouchers := make([]entity.Voucher, 0)
	if err := vc.db.Where("expires_at > ?", time.Now()).Order("expires_at ASC").Find(&vouchers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, vouchers)
}

// GET /api/vouchers/usages
func (vc *VoucherController) Usages(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	usages := make([]entity.VoucherUsage, 0)
	if err := vc.db.Preload("Voucher").Where("user_id = ?", userID).Order("used_at DESC").Find(&usages).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, usages)
}
