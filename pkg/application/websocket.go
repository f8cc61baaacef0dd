package application

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/fieldsuite/fieldsuite/pkg/composables"
)

const (
	// ChannelPublic receives broadcasts addressed to every connection.
	ChannelPublic = "public"
	// SessionChannelPrefix scopes a channel to one authenticated session so
	// sidebar-state notifications reach every mounted shell of that session
	// and nobody else's.
	SessionChannelPrefix = "session:"
)

// SidebarStateMessage is pushed whenever persisted sidebar state changes.
// It carries no state; consumers re-read the persisted value themselves.
var SidebarStateMessage = []byte(`{"event":"sidebar-state"}`)

type Huber interface {
	http.Handler
	Broadcast(channel string, message []byte)
}

type HuberOptions struct {
	Logger      *logrus.Logger
	CheckOrigin func(r *http.Request) bool
}

func NewHub(opts *HuberOptions) Huber {
	return &huber{
		logger: opts.Logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     opts.CheckOrigin,
		},
		channels: make(map[string]map[*websocket.Conn]bool),
	}
}

type huber struct {
	logger   *logrus.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	channels map[string]map[*websocket.Conn]bool
}

func (h *huber) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	channel := ChannelPublic
	if sess, err := composables.UseSession(r.Context()); err == nil {
		channel = SessionChannelPrefix + sess.Token
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		if h.logger != nil {
			h.logger.WithError(err).Warn("websocket: upgrade failed")
		}
		return
	}

	h.register(channel, conn)
	go h.readLoop(channel, conn)
}

func (h *huber) register(channel string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.channels[channel] == nil {
		h.channels[channel] = make(map[*websocket.Conn]bool)
	}
	h.channels[channel][conn] = true
}

func (h *huber) unregister(channel string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.channels[channel], conn)
	if len(h.channels[channel]) == 0 {
		delete(h.channels, channel)
	}
	_ = conn.Close()
}

// readLoop drains client frames until the connection closes. The shell
// protocol is push-only; inbound payloads are discarded.
func (h *huber) readLoop(channel string, conn *websocket.Conn) {
	defer h.unregister(channel, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *huber) Broadcast(channel string, message []byte) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.channels[channel]))
	for conn := range h.channels[channel] {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			if h.logger != nil {
				h.logger.WithError(err).Debug("websocket: dropping dead connection")
			}
			h.unregister(channel, conn)
		}
	}
}
