package realtime

import (
	"net/http"
	"sync"
	"time"

	"pet-care-companion/internal/platform/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Tiempos de escritura/ping y límite de lectura.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB
	sendBuffer = 16
)

const (
	TypeHello         = "hello"
	TypeStatusChanged = "event.status_changed"
	TypeReminderDue   = "reminder.due"
)

// Message es el sobre de todo lo que viaja por /ws.
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

type client struct {
	id   string
	send chan Message
	once sync.Once
	done chan struct{}
}

func (c *client) close() {
	c.once.Do(func() { close(c.done) })
}

// Hub mantiene los clientes websocket conectados y les reparte cada Publish.
// Todas las pantallas ven el mismo store: un toggle en una llega a las demás.
type Hub struct {
	log      logger.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*client
	closed  bool
}

func NewHub(log logger.Logger) *Hub {
	if log == nil {
		log = logger.Discard()
	}
	return &Hub{
		log:     log,
		clients: map[string]*client{},
		upgrader: websocket.Upgrader{
			// la app móvil no manda Origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Publish no bloquea: un cliente con el buffer lleno se desconecta.
func (h *Hub) Publish(m Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.send <- m:
		default:
			h.log.Warn("ws client too slow, dropping", map[string]any{"client_id": c.id})
			c.close()
		}
	}
}

func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close desconecta a todos y rechaza conexiones nuevas.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for _, c := range h.clients {
		c.close()
	}
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c.id] = c
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c.id)
}

// ServeHTTP godoc
// @Summary Cambios en tiempo real
// @Description WebSocket. Mensajes `{type, data}`: `hello`, `event.status_changed`, `reminder.due`.
// @Tags realtime
// @Success 101 {string} string "Switching Protocols"
// @Router /ws [get]
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("ws upgrade failed", map[string]any{"error": err.Error()})
		return
	}
	defer func() { _ = conn.Close() }()

	c := &client{
		id:   uuid.NewString(),
		send: make(chan Message, sendBuffer),
		done: make(chan struct{}),
	}
	if !h.register(c) {
		return
	}
	defer h.unregister(c)
	log := h.log.With(map[string]any{"client_id": c.id})
	log.Debug("ws client connected", nil)

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// El lector solo drena frames de control y detecta el cierre.
	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	if err := write(conn, Message{Type: TypeHello, Data: map[string]string{"client_id": c.id}}); err != nil {
		return
	}

	for {
		select {
		case <-readerDone:
			log.Debug("ws client disconnected", nil)
			return
		case <-c.done:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
			return
		case <-r.Context().Done():
			return
		case m := <-c.send:
			if err := write(conn, m); err != nil {
				log.Debug("ws write failed", map[string]any{"error": err.Error()})
				return
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func write(conn *websocket.Conn, m Message) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(m)
}
