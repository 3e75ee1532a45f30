package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func newTestClient(sessionID string, buf int) *Client {
	return &Client{sessionID: sessionID, send: make(chan []byte, buf)}
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		if !ok {
			t.Fatalf("send channel closed")
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for message")
	}
	return nil
}

func TestHub_PublishReachesOnlyThatSession(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(nil)
	go h.Run(ctx)

	mine := newTestClient("uid-1", 4)
	other := newTestClient("uid-2", 4)
	h.Register(mine)
	h.Register(other)

	h.NotifyProfileWritten("uid-1", "seller")

	var evt SessionEvent
	if err := json.Unmarshal(receive(t, mine), &evt); err != nil {
		t.Fatalf("bad event json: %v", err)
	}
	if evt.Type != EventProfileWritten || evt.Role != "seller" || evt.SessionID != "uid-1" {
		t.Fatalf("unexpected event: %+v", evt)
	}

	select {
	case msg := <-other.send:
		t.Fatalf("other session received %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_UnregisterClosesSendOnce(t *testing.T) {
	h := NewHub(nil)
	c := newTestClient("uid-1", 1)
	h.Register(c)
	if h.ClientCount("uid-1") != 1 {
		t.Fatalf("expected 1 client")
	}

	h.Unregister(c)
	h.Unregister(c)

	if _, ok := <-c.send; ok {
		t.Fatalf("expected closed send channel")
	}
	if h.ClientCount("uid-1") != 0 {
		t.Fatalf("expected 0 clients")
	}
}

func TestHub_RunClosesClientsOnShutdown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(nil)
	c := newTestClient("uid-1", 1)
	h.Register(c)

	done := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return")
	}
	if _, ok := <-c.send; ok {
		t.Fatalf("expected closed send channel")
	}
}
