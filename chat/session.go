// Package chat keeps one conversation's message list in sync with the
// server and makes sending feel instant. The list is replaced wholesale
// on every poll; locally-sent messages ride along as Pending entries
// until the server confirms them.
package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/client"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/polling"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notify fires once per newly arrived counterparty message; the portals
// hook the notification sound and the scroll affordance here.
type Notify func(latest entity.Message)

type Session struct {
	client *client.Client
	chatID uint
	selfID uint
	log    *zap.Logger
	onNew  Notify

	sub *polling.Subscription[[]entity.Message]

	mu       sync.Mutex
	messages []entity.Message
	tailID   uint // id of the last server message we have seen
	loaded   bool // first fetch applied; initial history never notifies
}

type Option func(*Session)

func WithNotify(fn Notify) Option {
	return func(s *Session) { s.onNew = fn }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// Open creates (or finds) the conversation for an order and starts
// polling its messages. Close must be called when the screen goes away.
func Open(ctx context.Context, cl *client.Client, selfID, orderID uint, interval time.Duration, opts ...Option) (*Session, error) {
	room := cl.OpenConversation(ctx, orderID)
	if !room.OK {
		return nil, fmt.Errorf("open conversation: %s", room.Message)
	}

	s := &Session{
		client: cl,
		chatID: room.Data.ID,
		selfID: selfID,
		log:    zap.NewNop(),
		onNew:  func(entity.Message) {},
	}
	for _, opt := range opts {
		opt(s)
	}

	source := func(ctx context.Context) ([]entity.Message, error) {
		res := cl.Messages(ctx, s.chatID)
		if !res.OK {
			return nil, errors.New(res.Message)
		}
		return res.Data, nil
	}
	s.sub = polling.Subscribe(ctx, source, interval, s.applyServerList, s.log)
	return s, nil
}

func (s *Session) ChatID() uint { return s.chatID }

// Messages returns a snapshot of the current list, server messages
// first, then local entries still awaiting confirmation.
func (s *Session) Messages() []entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Message(nil), s.messages...)
}

// applyServerList swaps the local list for the fresh server copy and
// re-appends unconfirmed local sends so an in-flight message never
// disappears on a poll tick. New-message detection compares only the
// tail id: good enough for a chat where the counterparty appends.
func (s *Session) applyServerList(list []entity.Message) {
	s.mu.Lock()

	var latest entity.Message
	notify := false
	if len(list) > 0 {
		tail := list[len(list)-1]
		if s.loaded && tail.ID != s.tailID && tail.SenderID != s.selfID {
			notify = true
			latest = tail
		}
		s.tailID = tail.ID
	}
	s.loaded = true

	next := append([]entity.Message(nil), list...)
	for _, m := range s.messages {
		if m.LocalID != "" && m.Delivery != entity.DeliveryConfirmed {
			next = append(next, m)
		}
	}
	s.messages = next
	s.mu.Unlock()

	if notify {
		s.onNew(latest)
	}
}

// Send appends an optimistic Pending entry, then posts to the server.
// On success the entry is swapped in place for the authoritative copy;
// on failure it flips to Failed and waits for Retry or Discard.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	localID := "temp-" + uuid.NewString()
	temp := entity.Message{
		ChatID:    s.chatID,
		SenderID:  s.selfID,
		Message:   text,
		CreatedAt: time.Now(),
		Delivery:  entity.DeliveryPending,
		LocalID:   localID,
	}
	s.mu.Lock()
	s.messages = append(s.messages, temp)
	s.mu.Unlock()

	return localID, s.deliver(ctx, localID, text)
}

// Retry re-sends a Failed entry.
func (s *Session) Retry(ctx context.Context, localID string) error {
	s.mu.Lock()
	var text string
	found := false
	for i := range s.messages {
		if s.messages[i].LocalID == localID && s.messages[i].Delivery == entity.DeliveryFailed {
			s.messages[i].Delivery = entity.DeliveryPending
			text = s.messages[i].Message
			found = true
			break
		}
	}
	s.mu.Unlock()
	if !found {
		return fmt.Errorf("no failed message %s", localID)
	}
	return s.deliver(ctx, localID, text)
}

// Discard rolls back a Failed entry.
func (s *Session) Discard(localID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.messages {
		if s.messages[i].LocalID == localID {
			s.messages = append(s.messages[:i], s.messages[i+1:]...)
			return
		}
	}
}

func (s *Session) deliver(ctx context.Context, localID, text string) error {
	res := s.client.SendMessage(ctx, s.chatID, text)

	s.mu.Lock()
	idx := -1
	for i := range s.messages {
		if s.messages[i].LocalID == localID {
			idx = i
			break
		}
	}
	if idx == -1 {
		// discarded while in flight
		s.mu.Unlock()
		return nil
	}
	if !res.OK {
		s.messages[idx].Delivery = entity.DeliveryFailed
		s.mu.Unlock()
		s.log.Warn("send failed", zap.String("local_id", localID), zap.String("reason", res.Message))
		return errors.New(res.Message)
	}

	confirmed := res.Data
	confirmed.Delivery = entity.DeliveryConfirmed
	s.messages[idx] = confirmed
	if confirmed.ID > s.tailID {
		s.tailID = confirmed.ID
	}
	s.mu.Unlock()

	// mutation-then-refetch, same as every other write in the app
	s.sub.Refresh()
	return nil
}

// Close stops polling and aborts any in-flight fetch.
func (s *Session) Close() {
	s.sub.Cancel()
}
