package controllers

import (
	"strconv"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/resp"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/services"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/utils"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/ws"
	"github.com/gin-gonic/gin"
)

type ChatController struct {
	service *services.ChatService
	hub     *ws.ChatHub
}

func NewChatController(service *services.ChatService, hub *ws.ChatHub) *ChatController {
	return &ChatController{service: service, hub: hub}
}

// POST /api/chat/conversations
func (cc *ChatController) OpenConversation(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	var req struct {
		OrderID uint `json:"order_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request")
		return
	}

	room, err := cc.service.OpenConversation(userID, req.OrderID)
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	resp.OK(c, room)
}

// GET /api/chat/messages/:chatID
func (cc *ChatController) ListMessages(c *gin.Context) {
	chatID, _ := strconv.Atoi(c.Param("chatID"))
	userID := utils.CurrentUserID(c)

	if _, err := cc.service.CanAccess(userID, uint(chatID)); err != nil {
		resp.Forbidden(c, "no access")
		return
	}
	msgs, err := cc.service.Messages(uint(chatID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, msgs)
}

// POST /api/chat/messages/:chatID
func (cc *ChatController) SendMessage(c *gin.Context) {
	chatID, _ := strconv.Atoi(c.Param("chatID"))
	userID := utils.CurrentUserID(c)

	if _, err := cc.service.CanAccess(userID, uint(chatID)); err != nil {
		resp.Forbidden(c, "no access")
		return
	}

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "message is required")
		return
	}

	msg, err := cc.service.Send(uint(chatID), userID, req.Message)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	cc.hub.Broadcast(msg)
	resp.Created(c, msg)
}

// POST /api/chat/send-support
func (cc *ChatController) SendSupport(c *gin.Context) {
	userID := utils.CurrentUserID(c)

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "message is required")
		return
	}

	room, err := cc.service.OpenConversation(userID, 0)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	msg, err := cc.service.Send(room.ID, userID, req.Message)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	cc.hub.Broadcast(msg)
	resp.Created(c, msg)
}
