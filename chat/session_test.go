package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/client"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/entity"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/session"
	"go.uber.org/zap"
)

// fakeChat is a minimal stateful chat backend for session tests.
type fakeChat struct {
	mu        sync.Mutex
	messages  []entity.Message
	nextID    uint
	sendGate  chan struct{} // when set, POST send blocks until closed
	failSends bool
}

func (f *fakeChat) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat/conversations", func(w http.ResponseWriter, r *http.Request) {
		writeOK(w, entity.ChatRoom{ID: 9, OrderID: 1})
	})
	mux.HandleFunc("GET /api/chat/messages/9", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		list := append([]entity.Message(nil), f.messages...)
		f.mu.Unlock()
		writeOK(w, list)
	})
	mux.HandleFunc("POST /api/chat/messages/9", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		gate := f.sendGate
		fail := f.failSends
		f.mu.Unlock()
		if gate != nil {
			<-gate
		}
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "send blew up"})
			return
		}
		var in struct {
			Message string `json:"message"`
		}
		json.NewDecoder(r.Body).Decode(&in)

		f.mu.Lock()
		f.nextID++
		msg := entity.Message{ID: f.nextID, ChatID: 9, SenderID: 1, Message: in.Message, CreatedAt: time.Now()}
		f.messages = append(f.messages, msg)
		f.mu.Unlock()
		writeOK(w, msg)
	})
	return mux
}

func writeOK(w http.ResponseWriter, data any) {
	json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func (f *fakeChat) push(senderID uint, text string) entity.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	msg := entity.Message{ID: f.nextID, ChatID: 9, SenderID: senderID, Message: text, CreatedAt: time.Now()}
	f.messages = append(f.messages, msg)
	return msg
}

func openSession(t *testing.T, fake *fakeChat, opts ...Option) *Session {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	store := session.NewMemoryStore()
	store.SetToken(session.PortalCustomer, "tok")
	cl := client.New(srv.URL, session.PortalCustomer, store, zap.NewNop())

	s, err := Open(context.Background(), cl, 1, 1, time.Hour, opts...)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Close)
	return s
}

func waitFor(t *testing.T, cond func() bool, what string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for !cond() {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for " + what)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestOptimisticSendReconciliation(t *testing.T) {
	fake := &fakeChat{}
	fake.push(2, "is my order on the way?")
	gate := make(chan struct{})
	fake.sendGate = gate

	s := openSession(t, fake)
	waitFor(t, func() bool { return len(s.Messages()) == 1 }, "initial history")

	done := make(chan error, 1)
	go func() {
		_, err := s.Send(context.Background(), "yes, 5 minutes out")
		done <- err
	}()

	// while the request is in flight the temp entry is visible
	waitFor(t, func() bool {
		msgs := s.Messages()
		return len(msgs) == 2 && msgs[1].Delivery == entity.DeliveryPending
	}, "pending entry")
	pending := s.Messages()[1]
	if !strings.HasPrefix(pending.LocalID, "temp-") {
		t.Fatalf("expected temp local id, got %q", pending.LocalID)
	}
	if pending.ID != 0 {
		t.Fatalf("pending entry must not have a server id, got %d", pending.ID)
	}

	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("send failed: %v", err)
	}

	// swap in place: same length, same position, server id, confirmed
	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("list length changed across the swap: %d", len(msgs))
	}
	got := msgs[1]
	if got.Delivery != entity.DeliveryConfirmed {
		t.Fatalf("expected confirmed, got %v", got.Delivery)
	}
	if got.ID == 0 {
		t.Fatal("confirmed entry must carry the server id")
	}
	if got.LocalID != "" {
		t.Fatalf("confirmed entry must not keep the temp id, got %q", got.LocalID)
	}
}

func TestNewMessageDetectionFiresOnce(t *testing.T) {
	fake := &fakeChat{}
	fake.push(2, "hello")

	var notifies int64
	s := openSession(t, fake, WithNotify(func(entity.Message) {
		atomic.AddInt64(&notifies, 1)
	}))
	waitFor(t, func() bool { return len(s.Messages()) == 1 }, "initial history")

	// initial load must not notify
	if n := atomic.LoadInt64(&notifies); n != 0 {
		t.Fatalf("initial history notified %d times", n)
	}

	// counterparty sends: next poll must notify exactly once
	fake.push(2, "your rider is nearby")
	s.sub.Refresh()
	waitFor(t, func() bool { return len(s.Messages()) == 2 }, "second message")
	waitFor(t, func() bool { return atomic.LoadInt64(&notifies) == 1 }, "notification")

	// same tail id again: no second notification
	s.sub.Refresh()
	time.Sleep(50 * time.Millisecond)
	if n := atomic.LoadInt64(&notifies); n != 1 {
		t.Fatalf("unchanged tail notified again: %d", n)
	}
}

func TestOwnMessageDoesNotNotify(t *testing.T) {
	fake := &fakeChat{}

	var notifies int64
	s := openSession(t, fake, WithNotify(func(entity.Message) {
		atomic.AddInt64(&notifies, 1)
	}))
	if _, err := s.Send(context.Background(), "on my way"); err != nil {
		t.Fatal(err)
	}
	waitFor(t, func() bool {
		msgs := s.Messages()
		return len(msgs) == 1 && msgs[0].Delivery == entity.DeliveryConfirmed
	}, "confirmation")

	time.Sleep(50 * time.Millisecond)
	if n := atomic.LoadInt64(&notifies); n != 0 {
		t.Fatalf("own message must not notify, got %d", n)
	}
}

func TestFailedSendRetryAndDiscard(t *testing.T) {
	fake := &fakeChat{failSends: true}
	s := openSession(t, fake)

	localID, err := s.Send(context.Background(), "hello?")
	if err == nil {
		t.Fatal("expected send error")
	}
	msgs := s.Messages()
	if len(msgs) != 1 || msgs[0].Delivery != entity.DeliveryFailed {
		t.Fatalf("expected one failed entry, got %+v", msgs)
	}

	// server recovers; retry confirms the same entry
	fake.mu.Lock()
	fake.failSends = false
	fake.mu.Unlock()
	if err := s.Retry(context.Background(), localID); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	msgs = s.Messages()
	if len(msgs) != 1 || msgs[0].Delivery != entity.DeliveryConfirmed {
		t.Fatalf("expected confirmed entry after retry, got %+v", msgs)
	}

	// a second failure can be rolled back entirely
	fake.mu.Lock()
	fake.failSends = true
	fake.mu.Unlock()
	localID2, err := s.Send(context.Background(), "still there?")
	if err == nil {
		t.Fatal("expected send error")
	}
	s.Discard(localID2)
	for _, m := range s.Messages() {
		if m.LocalID == localID2 {
			t.Fatal("discarded entry still present")
		}
	}
}
