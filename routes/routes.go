package routes

import (
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/configs"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/controllers"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/middlewares"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/repository"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/services"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/ws"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes wires the whole HTTP surface and returns the chat hub
// so main can run and stop it.
func RegisterRoutes(r *gin.Engine, cfg *configs.Config, log *zap.Logger) *ws.ChatHub {
	r.Use(middlewares.CORSMiddleware())
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	db := configs.DB()

	// Repositories
	chatRepo := repository.NewChatRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	cartRepo := repository.NewCartRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	riderRepo := repository.NewRiderRepository(db)
	remitRepo := repository.NewRemittanceRepository(db)
	refundRepo := repository.NewRefundRepository(db)

	// Services
	chatSvc := services.NewChatService(chatRepo, orderRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo)
	cartSvc := services.NewCartService(db, cartRepo, restRepo)
	riderSvc := services.NewRiderService(orderRepo, riderRepo)
	remitSvc := services.NewRemittanceService(remitRepo, orderRepo)
	refundSvc := services.NewRefundService(refundRepo, orderRepo)

	hub := ws.NewChatHub(chatSvc, log)

	// Controllers
	chatCtrl := controllers.NewChatController(chatSvc, hub)
	orderCtrl := controllers.NewOrderController(orderSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	riderCtrl := controllers.NewRiderController(riderSvc, orderSvc)
	remitCtrl := controllers.NewRemittanceController(remitSvc)
	refundCtrl := controllers.NewRefundController(refundSvc)
	favCtrl := controllers.NewFavoriteController(db)
	voucherCtrl := controllers.NewVoucherController(db)
	addrCtrl := controllers.NewAddressController(db)
	restCtrl := controllers.NewRestaurantController(restRepo)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Public
	r.GET("/api/restaurants", restCtrl.List)
	r.GET("/api/restaurants/:id", restCtrl.Detail)

	// Customer
	customer := r.Group("/api", auth("customer"))
	{
		customer.GET("/orders", orderCtrl.List)
		customer.GET("/orders/:id", orderCtrl.Detail)
		customer.POST("/orders", orderCtrl.Create)
		customer.POST("/orders/:id/cancel", orderCtrl.Cancel)

		customer.GET("/cart", cartCtrl.Get)
		customer.POST("/cart", cartCtrl.Add)
		customer.PUT("/cart/:itemID", cartCtrl.UpdateItem)
		customer.DELETE("/cart/:itemID", cartCtrl.RemoveItem)
		customer.DELETE("/cart", cartCtrl.Clear)

		customer.GET("/favorites", favCtrl.List)
		customer.POST("/favorites", favCtrl.Create)
		customer.DELETE("/favorites/:id", favCtrl.Delete)

		customer.GET("/vouchers", voucherCtrl.List)
		customer.GET("/vouchers/usages", voucherCtrl.Usages)

		customer.GET("/addresses", addrCtrl.List)
		customer.POST("/addresses", addrCtrl.Create)
		customer.PUT("/addresses/:id", addrCtrl.Update)
		customer.DELETE("/addresses/:id", addrCtrl.Delete)

		customer.POST("/refunds", refundCtrl.Create)
		customer.GET("/refunds", refundCtrl.List)
	}

	// Chat is shared between customers and riders; access is checked
	// per room, not per role.
	chat := r.Group("/api/chat", auth("customer", "rider"))
	{
		chat.POST("/conversations", chatCtrl.OpenConversation)
		chat.GET("/messages/:chatID", chatCtrl.ListMessages)
		chat.POST("/messages/:chatID", chatCtrl.SendMessage)
		chat.POST("/send-support", chatCtrl.SendSupport)
	}

	// Vendor
	vendor := r.Group("/api/vendor", auth("vendor", "admin"))
	{
		vendor.PATCH("/orders/:id/accept", orderCtrl.VendorAccept)
	}

	// Rider
	rider := r.Group("/api", auth("rider"))
	{
		rider.GET("/riders/orders", riderCtrl.Orders)
		rider.POST("/riders/orders/accept", riderCtrl.Accept)
		rider.POST("/riders/orders/:id/complete", riderCtrl.Complete)
		rider.POST("/riders/location", riderCtrl.Location)

		rider.GET("/rider/remittance/summary", remitCtrl.Summary)
		rider.GET("/rider/remittance/history", remitCtrl.History)
		rider.POST("/rider/remittance/submit", remitCtrl.Submit)
	}

	// Live chat transport
	r.GET("/ws/chat/:roomID", auth("customer", "rider"), hub.HandleWebSocket)

	return hub
}
