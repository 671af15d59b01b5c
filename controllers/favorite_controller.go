package controllers

import (
	"strconv"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/resp"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

// GET /api/favorites
func (fc *FavoriteController) List(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	favs := make([]entity.Favorite, 0)
	if err := fc.db.Preload("Restaurant").Where("user_id = ?", userID).Find(&favs).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, favs)
}

// POST /api/favorites
func (fc *FavoriteController) Create(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	var req struct {
		RestaurantID uint `json:"restaurant_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "restaurant_id is required")
		return
	}

	fav := entity.Favorite{UserID: userID, RestaurantID: req.RestaurantID}
	// adding the same restaurant twice is a no-op
	if err := fc.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&fav).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if fav.ID == 0 {
		fc.db.Where("user_id = ? AND restaurant_id = ?", userID, req.RestaurantID).First(&fav)
	}
	resp.Created(c, fav)
}

// DELETE /api/favorites/:id
func (fc *FavoriteController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	userID := utils.CurrentUserID(c)

	res := fc.db.Where("id = ? AND user_id = ?", id, userID).Delete(&entity.Favorite{})
	if res.Error != nil {
		resp.ServerError(c, res.Error)
		return
	}
	if res.RowsAffected == 0 {
		resp.NotFound(c, "favorite not found")
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
