package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/result"
)

// OpenConversation returns the chat room for an order, creating it if
// this is the first message. Pass orderID 0 for a support conversation.
func (c *Client) OpenConversation(ctx context.Context, orderID uint) result.Result[entity.ChatRoom] {
	return doJSON[entity.ChatRoom](ctx, c, http.MethodPost, "/api/chat/conversations", map[string]uint{
		"order_id": orderID,
	})
}

// Messages fetches the full message list for a conversation. The sync
// layer replaces its local list wholesale with this.
func (c *Client) Messages(ctx context.Context, chatID uint) result.Result[[]entity.Message] {
	return doJSON[[]entity.Message](ctx, c, http.MethodGet, fmt.Sprintf("/api/chat/messages/%d", chatID), nil)
}

// SendMessage posts one message and returns the authoritative server
// copy used to reconcile the optimistic entry.
func (c *Client) SendMessage(ctx context.Context, chatID uint, text string) result.Result[entity.Message] {
	return doJSON[entity.Message](ctx, c, http.MethodPost, fmt.Sprintf("/api/chat/messages/%d", chatID), map[string]string{
		"message": text,
	})
}

// SendSupport posts to the support queue instead of an order room.
func (c *Client) SendSupport(ctx context.Context, text string) result.Result[entity.Message] {
	return doJSON[entity.Message](ctx, c, http.MethodPost, "/api/chat/send-support", map[string]string{
		"message": text,
	})
}
