package controllers

import (
	"strconv"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/resp"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddressController struct {
	db *gorm.DB
}

func NewAddressController(db *gorm.DB) *AddressController {
	return &AddressController{db: db}
}

// GET /api/addresses
func (ac *AddressController) List(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	addrs := make([]entity.Address, 0)
	if err := ac.db.Where("user_id = ?", userID).Order("is_default DESC, id ASC").Find(&addrs).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, addrs)
}

// POST /api/addresses
func (ac *AddressController) Create(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	var addr entity.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}
	addr.ID = 0
	addr.UserID = userID

	if err := ac.db.Transaction(func(tx *gorm.DB) error {
		if addr.IsDefault {
			if err := tx.Model(&entity.Address{}).Where("user_id = ?", userID).Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&addr).Error
	}); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, addr)
}

// PUT /api/addresses/:id
func (ac *AddressController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	userID := utils.CurrentUserID(c)

	var existing entity.Address
	if err := ac.db.Where("id = ? AND user_id = ?", id, userID).First(&existing).Error; err != nil {
		resp.NotFound(c, "address not found")
		return
	}

	var in entity.Address
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}
	in.ID = existing.ID
	in.UserID = userID
	in.CreatedAt = existing.CreatedAt

	if err := ac.db.Transaction(func(tx *gorm.DB) error {
		if in.IsDefault {
			if err := tx.Model(&entity.Address{}).Where("user_id = ? AND id <> ?", userID, in.ID).Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(&in).Error
	}); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, in)
}

// DELETE /api/addresses/:id
func (ac *AddressController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	userID := utils.CurrentUserID(c)

	res := ac.db.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Address{})
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "address not found")
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
