package polling

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Feed is the push-channel replacement for a polling Subscription: the
// server streams JSON frames over a websocket and each decoded frame is
// handed to apply in read order. Same cancellation contract as
// Subscription; no sequence guard is needed because frames arrive on a
// single ordered connection.
type Feed[T any] struct {
	conn   *websocket.Conn
	cancel context.CancelFunc
	done   chan struct{}
}

// SubscribeFeed dials the websocket endpoint and starts reading. header
// carries the bearer token, same as REST calls.
func SubscribeFeed[T any](parent context.Context, url string, header http.Header, apply func(T), log *zap.Logger) (*Feed[T], error) {
	ctx, cancel := context.WithCancel(parent)
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if err != nil {
		cancel()
		return nil, err
	}

	f := &Feed[T]{conn: conn, cancel: cancel, done: make(chan struct{})}

	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	go func() {
		defer close(f.done)
		for {
			_, raw, err := conn.ReadMessage()
			if err != nil {
				if ctx.Err() == nil {
					log.Warn("feed closed", zap.Error(err))
				}
				return
			}
			var value T
			if err := json.Unmarshal(raw, &value); err != nil {
				log.Warn("bad feed frame", zap.Error(err))
				continue
			}
			apply(value)
		}
	}()

	return f, nil
}

// Cancel closes the connection and waits for the reader to stop.
func (f *Feed[T]) Cancel() {
	f.cancel()
	<-f.done
}
