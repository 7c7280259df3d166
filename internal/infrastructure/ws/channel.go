package ws

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Channel adapts a websocket connection to domain.PushChannel. The peer is
// considered confirmed whenever a pong arrived since the last Probe, which
// mirrors the client answering the server's ping control frame.
type Channel struct {
	conn *websocket.Conn

	mu        sync.Mutex
	open      bool
	confirmed bool
}

func NewChannel(conn *websocket.Conn) *Channel {
	ch := &Channel{conn: conn, open: true, confirmed: true}
	conn.SetPongHandler(func(string) error {
		ch.mu.Lock()
		ch.confirmed = true
		ch.mu.Unlock()
		return nil
	})
	return ch
}

func (ch *Channel) IsOpen() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.open
}

func (ch *Channel) Send(payload []byte) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := ch.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		ch.open = false
		return err
	}
	return nil
}

func (ch *Channel) Probe() error {
	ch.mu.Lock()
	ch.confirmed = false
	ch.mu.Unlock()
	return ch.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (ch *Channel) Confirmed() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return ch.confirmed
}

func (ch *Channel) Close() error {
	ch.mu.Lock()
	ch.open = false
	ch.mu.Unlock()
	return ch.conn.Close()
}

// MarkClosed flags the channel without touching the connection; used by the
// read loop once the peer is gone and the connection already errored out.
func (ch *Channel) MarkClosed() {
	ch.mu.Lock()
	ch.open = false
	ch.mu.Unlock()
}
