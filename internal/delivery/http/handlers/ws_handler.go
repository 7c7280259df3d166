package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/jawirlabs/topup-order-service/internal/domain"
	wsinfra "github.com/jawirlabs/topup-order-service/internal/infrastructure/ws"
)

// Subscriptions is the slice of the push layer the websocket endpoint needs.
type Subscriptions interface {
	Subscribe(refID string, ch domain.PushChannel)
	Unsubscribe(ch domain.PushChannel)
}

type WSHandler struct {
	subs     Subscriptions
	upgrader websocket.Upgrader
}

func NewWSHandler(subs Subscriptions) *WSHandler {
	return &WSHandler{
		subs: subs,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Serve upgrades the connection and binds it to a ref_id subscription. The
// read loop only drains control frames; clients never send payloads, and the
// first read error tears the subscription down.
func (h *WSHandler) Serve(w http.ResponseWriter, r *http.Request) {
	refID := r.URL.Query().Get("ref_id")
	if refID == "" {
		writeError(w, http.StatusBadRequest, "ref_id is required")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err.Error())
		return
	}

	channel := wsinfra.NewChannel(conn)
	h.subs.Subscribe(refID, channel)
	slog.Info("websocket subscribed", "ref_id", refID)

	go func() {
		defer func() {
			channel.MarkClosed()
			h.subs.Unsubscribe(channel)
			conn.Close()
			slog.Info("websocket closed", "ref_id", refID)
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
