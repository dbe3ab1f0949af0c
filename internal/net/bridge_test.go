package net

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PenSheet/internal/state"
)

func startBridge(t *testing.T) (string, <-chan state.ContactEvent) {
	t.Helper()
	events := make(chan state.ContactEvent, 16)
	b := NewBridge(func(ev state.ContactEvent) { events <- ev })

	srv := httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http") + ContactPath, events
}

func next(t *testing.T, events <-chan state.ContactEvent) state.ContactEvent {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("no event from bridge")
	}
	return state.ContactEvent{}
}

func TestBridgeForwardsContacts(t *testing.T) {
	url, events := startBridge(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(Message{
		Type:    "touchstart",
		Touches: []Touch{{X: 3, Y: 4, Force: 0.25, TouchType: "stylus"}},
	}))
	require.NoError(t, conn.WriteJSON(Message{Type: "bogus"}))
	require.NoError(t, conn.WriteJSON(Message{Type: "touchend"}))

	ev := next(t, events)
	assert.Equal(t, state.PhaseStart, ev.Phase)
	assert.Equal(t, []state.Contact{{ClientX: 3, ClientY: 4, Force: 0.25, Type: state.TouchStylus}}, ev.Contacts)

	ev = next(t, events)
	assert.Equal(t, state.PhaseEnd, ev.Phase)
	assert.Empty(t, ev.Contacts)
}

func TestBridgeAcceptsOnePen(t *testing.T) {
	url, events := startBridge(t)

	first, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.ErrorIs(t, err, websocket.ErrBadHandshake)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// dropping the pen ends any stroke it left open and frees the slot
	require.NoError(t, first.Close())
	ev := next(t, events)
	assert.Equal(t, state.PhaseEnd, ev.Phase)

	second, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	second.Close()
}

func TestMessageEvent(t *testing.T) {
	touch := []Touch{{X: 1, Y: 2, TouchType: "stylus"}}
	cases := map[string]state.Phase{
		"touchstart":  state.PhaseStart,
		"touchmove":   state.PhaseMove,
		"touchend":    state.PhaseEnd,
		"touchcancel": state.PhaseEnd,
	}
	for typ, phase := range cases {
		ev, err := Message{Type: typ, Touches: touch}.Event()
		require.NoError(t, err)
		assert.Equal(t, phase, ev.Phase, typ)
	}

	_, err := Message{Type: "pointerdown"}.Event()
	assert.ErrorIs(t, err, ErrUnknownMessage)
}

func TestMessageEventRequiresTouches(t *testing.T) {
	for _, typ := range []string{"touchstart", "touchmove"} {
		_, err := Message{Type: typ}.Event()
		assert.ErrorIs(t, err, ErrNoTouches, typ)
	}

	// a lifted pen leaves no touches behind
	ev, err := Message{Type: "touchend"}.Event()
	require.NoError(t, err)
	assert.Empty(t, ev.Contacts)
}

func TestMessageEventNamesUntypedTouches(t *testing.T) {
	ev, err := Message{Type: "touchstart", Touches: []Touch{{X: 1, Y: 1}}}.Event()
	require.NoError(t, err)
	assert.Equal(t, state.TouchType("unknown"), ev.Contacts[0].Type)
}

func TestBridgeDropsEmptyStart(t *testing.T) {
	url, events := startBridge(t)

	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(Message{Type: "touchstart"}))
	require.NoError(t, conn.WriteJSON(Message{Type: "touchend"}))

	ev := next(t, events)
	assert.Equal(t, state.PhaseEnd, ev.Phase, "empty start must not be forwarded")
}

func TestURL(t *testing.T) {
	assert.Equal(t, "ws://192.168.1.4:8888/contacts", URL("192.168.1.4", 8888))
}
