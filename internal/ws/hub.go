package ws

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
)

// Client recebe os eventos pelo canal Send; o hub fecha Send ao remover o cliente.
type Client struct {
	ID   string
	Send chan []byte
}

// Hub repassa cada evento de empresa a todos os clientes conectados.
// Só a goroutine de Run altera o mapa de clientes.
type Hub struct {
	mu       sync.RWMutex
	clients  map[string]*Client
	register chan *Client
	unreg    chan *Client
	events   chan []byte

	log     *slog.Logger
	stop    chan struct{}
	stopped chan struct{}

	nextID atomic.Uint64
}

func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		clients:  make(map[string]*Client),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		events:   make(chan []byte, 1024),
		log:      log.With("cmp", "ws.hub"),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (h *Hub) Run() {
	h.log.Info("hub_run_start")
	defer close(h.stopped)

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c.ID] = c
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client_registered", "id", c.ID, "total", total)

		case c := <-h.unreg:
			if h.remove(c.ID) {
				h.log.Info("client_unregistered", "id", c.ID, "total", h.Count())
			}

		case msg := <-h.events:
			var slow []string
			h.mu.RLock()
			for id, c := range h.clients {
				select {
				case c.Send <- msg:
				default:
					slow = append(slow, id)
				}
			}
			h.mu.RUnlock()
			// cliente lento -> dropa para não travar o hub
			for _, id := range slow {
				h.remove(id)
				h.log.Warn("client_dropped_slow", "id", id)
			}

		case <-h.stop:
			h.mu.Lock()
			for id, c := range h.clients {
				close(c.Send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			h.log.Info("hub_run_stop")
			return
		}
	}
}

func (h *Hub) remove(id string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[id]
	if !ok {
		return false
	}
	delete(h.clients, id)
	close(c.Send)
	return true
}

func (h *Hub) Stop() {
	close(h.stop)
	<-h.stopped
}

// Register atribui o ID antes de entregar ao hub. Depois de Stop, fecha Send na hora.
func (h *Hub) Register(c *Client) {
	if c.ID == "" {
		c.ID = fmt.Sprintf("c%d", h.nextID.Add(1))
	}
	select {
	case h.register <- c:
	case <-h.stopped:
		close(c.Send)
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unreg <- c:
	case <-h.stopped:
	}
}

// Broadcast descarta o evento se o hub já parou.
func (h *Hub) Broadcast(b []byte) {
	select {
	case h.events <- b:
	case <-h.stopped:
	}
}

func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
