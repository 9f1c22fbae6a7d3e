// SPDX-License-Identifier: MIT
package transport

import (
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestWebSocketTransportBroadcast(t *testing.T) {
	wst, err := NewWebSocketTransport("127.0.0.1:0")
	if err != nil {
		t.Fatalf("NewWebSocketTransport: %v", err)
	}
	defer wst.Close()

	url := "ws://" + wst.Addr() + "/trace"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	defer conn.Close()

	want := TraceEvent{
		Seq:       7,
		Demo:      "bit-tricks",
		Label:     "abs(-20)",
		Value:     "20",
		Timestamp: time.Now().UnixNano(),
	}

	// The server registers the client shortly after the dial
	// returns, so keep sending until the reader sees an event.
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				_ = wst.Send(want)
			case <-stop:
				return
			}
		}
	}()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var got TraceEvent
	if err := conn.ReadJSON(&got); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	if got != want {
		t.Errorf("received %+v, expected %+v", got, want)
	}
}

func TestWebSocketTransportSendAfterClose(t *testing.T) {
	wst, err := NewWebSocketTransport("127.0.0.1:0")
	if err != nil {
		t.Fatalf("NewWebSocketTransport: %v", err)
	}

	if err := wst.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
	// Close is idempotent.
	if err := wst.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}

	if err := wst.Send(TraceEvent{Seq: 1}); err == nil {
		t.Error("Send after Close returned nil error")
	}
}

func TestWebSocketTransportSendWithoutClients(t *testing.T) {
	wst, err := NewWebSocketTransport("127.0.0.1:0")
	if err != nil {
		t.Fatalf("NewWebSocketTransport: %v", err)
	}
	defer wst.Close()

	// No client connected: events are dropped, never an error.
	for i := range 10 {
		if err := wst.Send(TraceEvent{Seq: uint32(i)}); err != nil {
			t.Fatalf("Send without clients: %v", err)
		}
	}
}

func TestLoggingTransport(t *testing.T) {
	lt := NewLoggingTransport()

	if err := lt.Send(TraceEvent{Demo: "wraparound", Label: "255+1", Value: "0"}); err != nil {
		t.Errorf("LoggingTransport.Send: %v", err)
	}
	if err := lt.Send(nil); err != nil {
		t.Errorf("LoggingTransport.Send(nil): %v", err)
	}
	if err := lt.Close(); err != nil {
		t.Errorf("LoggingTransport.Close: %v", err)
	}
}
