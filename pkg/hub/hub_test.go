package hub

import (
	"testing"
	"time"
)

func newTestClient(h *Hub) *Client {
	c := &Client{hub: h, send: make(chan Message, sendBuffer)}
	h.register <- c
	return c
}

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		if !ok {
			t.Fatal("send channel closed")
		}
		return msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
	}
	return Message{}
}

func TestHub_BroadcastAndReplay(t *testing.T) {
	h := New("test")
	go h.Run()
	defer h.Stop()

	first := newTestClient(h)
	if err := h.BroadcastJSON(map[string]int{"cycle": 7}); err != nil {
		t.Fatalf("BroadcastJSON: %v", err)
	}

	msg := receive(t, first)
	if msg.Type != JSONMessage || string(msg.Data) != `{"cycle":7}` {
		t.Errorf("got %v %q", msg.Type, msg.Data)
	}

	// A late client gets the latest message straight away
	late := newTestClient(h)
	if msg := receive(t, late); string(msg.Data) != `{"cycle":7}` {
		t.Errorf("replay: got %q", msg.Data)
	}

	h.BroadcastBinary([]byte{0xff, 0xd8})
	if msg := receive(t, late); msg.Type != BinaryMessage || len(msg.Data) != 2 {
		t.Errorf("binary: got %v %v", msg.Type, msg.Data)
	}
}

func TestHub_UnregisterAndStop(t *testing.T) {
	h := New("test")
	go h.Run()

	a := newTestClient(h)
	b := newTestClient(h)

	h.unregister <- a
	if _, ok := <-a.send; ok {
		t.Error("unregistered client channel should be closed")
	}

	deadline := time.Now().Add(time.Second)
	for h.ClientCount() != 1 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if n := h.ClientCount(); n != 1 {
		t.Errorf("ClientCount: got %d, want 1", n)
	}

	h.Stop()
	h.Stop() // idempotent
	if _, ok := <-b.send; ok {
		t.Error("Stop should close remaining clients")
	}
}

func TestHub_BroadcastNeverBlocks(t *testing.T) {
	h := New("idle") // Run not started: nothing drains the queue

	dropped := false
	for i := 0; i < cap(h.broadcast)+1; i++ {
		if !h.Broadcast(Message{Type: JSONMessage, Data: []byte("{}")}) {
			dropped = true
		}
	}
	if !dropped {
		t.Error("a full queue should drop instead of blocking")
	}
}
