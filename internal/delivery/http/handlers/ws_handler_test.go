package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jawirlabs/topup-order-service/internal/domain"
)

type subsStub struct {
	mu           sync.Mutex
	subscribed   map[string]domain.PushChannel
	unsubscribed []domain.PushChannel
}

func newSubsStub() *subsStub {
	return &subsStub{subscribed: make(map[string]domain.PushChannel)}
}

func (s *subsStub) Subscribe(refID string, ch domain.PushChannel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribed[refID] = ch
}

func (s *subsStub) Unsubscribe(ch domain.PushChannel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unsubscribed = append(s.unsubscribed, ch)
}

func (s *subsStub) channel(refID string) domain.PushChannel {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subscribed[refID]
}

func (s *subsStub) unsubscribeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.unsubscribed)
}

func dialWS(t *testing.T, server *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/?" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial websocket: %v", err)
	}
	return conn
}

func TestWSHandlerRequiresRefID(t *testing.T) {
	h := NewWSHandler(newSubsStub())
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestWSHandlerDeliversPushedPayload(t *testing.T) {
	subs := newSubsStub()
	server := httptest.NewServer(http.HandlerFunc(NewWSHandler(subs).Serve))
	defer server.Close()

	conn := dialWS(t, server, "ref_id=TOPUP-1")
	defer conn.Close()

	var channel domain.PushChannel
	for i := 0; i < 50; i++ {
		if channel = subs.channel("TOPUP-1"); channel != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if channel == nil {
		t.Fatal("connection was never subscribed")
	}

	payload := []byte(`{"ref_id":"TOPUP-1","status":"SUCCESS"}`)
	if err := channel.Send(payload); err != nil {
		t.Fatalf("send: %v", err)
	}

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, got, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("payload = %s", got)
	}
}

func TestWSHandlerUnsubscribesOnDisconnect(t *testing.T) {
	subs := newSubsStub()
	server := httptest.NewServer(http.HandlerFunc(NewWSHandler(subs).Serve))
	defer server.Close()

	conn := dialWS(t, server, "ref_id=TOPUP-2")
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for subs.unsubscribeCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("disconnect never unsubscribed the channel")
		}
		time.Sleep(10 * time.Millisecond)
	}

	channel := subs.channel("TOPUP-2")
	if channel != nil && channel.IsOpen() {
		t.Error("channel still marked open after disconnect")
	}
}

func TestWSHandlerPongConfirmsLiveness(t *testing.T) {
	subs := newSubsStub()
	server := httptest.NewServer(http.HandlerFunc(NewWSHandler(subs).Serve))
	defer server.Close()

	conn := dialWS(t, server, "ref_id=TOPUP-3")
	defer conn.Close()

	// The client's default ping handler only answers while a read is in
	// flight.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	var channel domain.PushChannel
	for i := 0; i < 50; i++ {
		if channel = subs.channel("TOPUP-3"); channel != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if channel == nil {
		t.Fatal("connection was never subscribed")
	}

	// Probe clears the confirmation and pings; the client's default pong
	// reply restores it once the read loop processes the control frame.
	if err := channel.Probe(); err != nil {
		t.Fatalf("probe: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for !channel.Confirmed() {
		if time.Now().After(deadline) {
			t.Fatal("pong never confirmed the channel")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
