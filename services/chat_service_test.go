package services

import (
	"testing"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
)

func TestOpenConversationIsIdempotent(t *testing.T) {
	f := newFixture(t)
	order := seedOrder(t, f, entity.OrderPreparing)

	a, err := f.chat.OpenConversation(testUser, order.ID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	b, err := f.chat.OpenConversation(testUser, order.ID)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if a.ID != b.ID {
		t.Errorf("reopening created a second room: %d vs %d", a.ID, b.ID)
	}
}

func TestSupportRoomSeparateFromOrderRooms(t *testing.T) {
	f := newFixture(t)
	order := seedOrder(t, f, entity.OrderPreparing)

	support, err := f.chat.OpenConversation(testUser, 0)
	if err != nil {
		t.Fatalf("open support: %v", err)
	}
	orderRoom, err := f.chat.OpenConversation(testUser, order.ID)
	if err != nil {
		t.Fatalf("open order room: %v", err)
	}
	if support.ID == orderRoom.ID {
		t.Error("support room and order room collapsed into one")
	}
	if support.OrderID != 0 {
		t.Errorf("support room order = %d, want 0", support.OrderID)
	}
}

func TestRoomAccess(t *testing.T) {
	f := newFixture(t)
	order := seedOrder(t, f, entity.OrderOutForDelivery)
	order.RiderID = 7
	f.db.Save(order)

	room, err := f.chat.OpenConversation(testUser, order.ID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := f.chat.CanAccess(testUser, room.ID); err != nil {
		t.Errorf("customer denied: %v", err)
	}
	if _, err := f.chat.CanAccess(7, room.ID); err != nil {
		t.Errorf("assigned rider denied: %v", err)
	}
	if _, err := f.chat.CanAccess(99, room.ID); err == nil {
		t.Error("stranger allowed into the room")
	}
}

func TestSendRejectsEmptyBody(t *testing.T) {
	f := newFixture(t)
	order := seedOrder(t, f, entity.OrderPreparing)
	room, err := f.chat.OpenConversation(testUser, order.ID)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := f.chat.Send(room.ID, testUser, ""); err == nil {
		t.Error("empty message accepted")
	}

	msg, err := f.chat.Send(room.ID, testUser, "nandito na ako sa labas")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if msg.ID == 0 {
		t.Error("message not persisted")
	}

	msgs, err := f.chat.Messages(room.ID)
	if err != nil {
		t.Fatalf("messages: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Message != "nandito na ako sa labas" {
		t.Errorf("messages = %+v, want the one sent", msgs)
	}
}
