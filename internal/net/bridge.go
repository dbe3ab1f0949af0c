package net

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"PenSheet/internal/state"
)

// ContactPath is where pen clients connect.
const ContactPath = "/contacts"

// Peer is the pen client currently feeding the bridge.
type Peer struct {
	Conn *websocket.Conn
}

// Bridge accepts one pen client at a time over a websocket and forwards
// its contact notifications to OnEvent. OnEvent is called from the
// connection's goroutine.
type Bridge struct {
	OnEvent func(state.ContactEvent)

	upgrader websocket.Upgrader
	server   *http.Server
	peer     *Peer
	mu       sync.Mutex
}

// NewBridge creates a bridge delivering events to onEvent.
func NewBridge(onEvent func(state.ContactEvent)) *Bridge {
	return &Bridge{
		OnEvent: onEvent,
		upgrader: websocket.Upgrader{
			// pen clients are served from anywhere on the LAN
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// URL returns the address pen clients should dial.
func URL(host string, port int) string {
	return fmt.Sprintf("ws://%s%s", net.JoinHostPort(host, fmt.Sprint(port)), ContactPath)
}

// Connected reports whether a pen client is attached.
func (b *Bridge) Connected() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.peer != nil
}

// Handler returns the HTTP handler serving ContactPath.
func (b *Bridge) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(ContactPath, b.serveContacts)
	return mux
}

// ListenAndServe runs the bridge on port until Shutdown is called.
func (b *Bridge) ListenAndServe(port int) error {
	b.mu.Lock()
	b.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           b.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	srv := b.server
	b.mu.Unlock()

	log.Printf("[BRIDGE] Listening on port %d", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("bridge: %w", err)
	}
	return nil
}

// Shutdown stops the listener and drops the attached pen client.
func (b *Bridge) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	srv := b.server
	var conn *websocket.Conn
	if b.peer != nil {
		conn = b.peer.Conn
	}
	b.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}

// reserve claims the single pen slot before the handshake so two clients
// racing to connect cannot both be accepted.
func (b *Bridge) reserve() (*Peer, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.peer != nil {
		return nil, false
	}
	b.peer = &Peer{}
	return b.peer, true
}

func (b *Bridge) attach(p *Peer, conn *websocket.Conn) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p.Conn = conn
}

func (b *Bridge) detach(p *Peer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.peer == p {
		b.peer = nil
	}
}

func (b *Bridge) serveContacts(w http.ResponseWriter, r *http.Request) {
	peer, ok := b.reserve()
	if !ok {
		log.Printf("[BRIDGE] Refused %s: a pen is already attached", r.RemoteAddr)
		http.Error(w, "a pen is already attached", http.StatusConflict)
		return
	}

	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[BRIDGE] Upgrade failed for %s: %v", r.RemoteAddr, err)
		b.detach(peer)
		return
	}
	b.attach(peer, conn)
	log.Printf("[BRIDGE] Pen attached from %s", r.RemoteAddr)

	b.readLoop(peer)
}

func (b *Bridge) readLoop(peer *Peer) {
	defer func() {
		peer.Conn.Close()
		b.detach(peer)
		// a pen that vanishes mid-stroke must not leave the session capturing
		b.emit(state.ContactEvent{Phase: state.PhaseEnd})
		log.Printf("[BRIDGE] Pen detached from %s", peer.Conn.RemoteAddr())
	}()

	for {
		var msg Message
		if err := peer.Conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("[BRIDGE] Read from %s: %v", peer.Conn.RemoteAddr(), err)
			}
			return
		}

		ev, err := msg.Event()
		if err != nil {
			log.Printf("[BRIDGE] Dropped message: %v", err)
			continue
		}
		b.emit(ev)
	}
}

func (b *Bridge) emit(ev state.ContactEvent) {
	if b.OnEvent != nil {
		b.OnEvent(ev)
	}
}
