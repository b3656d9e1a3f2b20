package ws

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// EventPublisher, service katmanının event yayınlamak için kullandığı interface.
//
// Service'ler Hub'ın concrete struct'ına değil bu interface'e bağımlıdır;
// testlerde kaydeden bir sahte publisher verilir.
type EventPublisher interface {
	BroadcastToAll(event Event)
	BroadcastToUser(userID string, event Event)
}

// EventSink, event'lerin hub dışında kopyalandığı ikincil hedef (ör: Kafka).
type EventSink interface {
	Publish(key string, value any) error
}

// Hub, tüm WebSocket bağlantılarını yöneten merkezi yapıdır (Observer pattern).
//
// Run goroutine'i register/unregister channel'larını select ile dinler;
// broadcast'ler clients map'ini RLock altında dolaşır.
type Hub struct {
	// clients: userID → Client set (bir kullanıcının birden fazla tab'ı olabilir).
	// Anonim client'ların her birinin kendine ait üretilmiş bir id'si vardır.
	clients map[string]map[*Client]bool
	mu      sync.RWMutex

	register   chan *Client
	unregister chan *Client
	done       chan struct{} // Run dönünce kapanır

	// seq: Her outbound event'e verilen artan sayaç.
	seq atomic.Int64

	sink EventSink
	log  *zap.Logger
}

// NewHub, yeni bir Hub oluşturur. sink nil olabilir.
func NewHub(logger *zap.Logger, sink EventSink) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		sink:       sink,
		log:        logger.Named("ws"),
	}
}

// Run, Hub'ın ana event loop'udur. ctx iptal edilince tüm bağlantıları kapatır ve döner.
func (h *Hub) Run(ctx context.Context) error {
	for {
		select {
		case client := <-h.register:
			h.addClient(client)

		case client := <-h.unregister:
			h.removeClient(client)

		case <-ctx.Done():
			close(h.done)
			h.shutdown()
			return nil
		}
	}
}

// join, client'ı Run goroutine'ine teslim eder. Hub kapanmışsa false döner.
func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// leave, client'ın çıkışını bildirir. Hub kapanmışsa bloklamadan döner.
func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]bool)
	}
	h.clients[client.userID][client] = true

	h.log.Debug("client connected",
		zap.String("user_id", client.userID),
		zap.Bool("anonymous", client.anonymous),
		zap.Int("user_connections", len(h.clients[client.userID])))
}

// removeClient, client'ı Hub'dan çıkarır ve send channel'ını kapatır.
// Aynı client için ikinci çağrı etkisizdir.
func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.userID]
	if !ok {
		return
	}
	if _, exists := clients[client]; !exists {
		return
	}
	delete(clients, client)
	close(client.send)

	if len(clients) == 0 {
		delete(h.clients, client.userID)
	}
	h.log.Debug("client disconnected", zap.String("user_id", client.userID))
}

// BroadcastToAll, tüm bağlı client'lara event gönderir ve sink'e kopyalar.
func (h *Hub) BroadcastToAll(event Event) {
	event.Seq = h.seq.Add(1)

	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("failed to marshal broadcast event", zap.String("op", event.Op), zap.Error(err))
		return
	}

	if h.sink != nil {
		if err := h.sink.Publish(event.Op, event); err != nil {
			h.log.Warn("failed to forward event to sink", zap.String("op", event.Op), zap.Error(err))
		}
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, clients := range h.clients {
		for client := range clients {
			h.deliver(client, data)
		}
	}
}

// BroadcastToUser, belirli bir kullanıcının tüm bağlantılarına event gönderir.
// Kullanıcıya özel event'ler sink'e yazılmaz.
func (h *Hub) BroadcastToUser(userID string, event Event) {
	event.Seq = h.seq.Add(1)

	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error("failed to marshal user event", zap.String("op", event.Op), zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[userID] {
		h.deliver(client, data)
	}
}

// deliver, RLock altında çağrılır. Buffer'ı dolu client yavaştır ve düşürülür.
func (h *Hub) deliver(client *Client, data []byte) {
	select {
	case client.send <- data:
	default:
		go h.leave(client)
	}
}

// ConnectionCount, açık bağlantı sayısı.
func (h *Hub) ConnectionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	n := 0
	for _, clients := range h.clients {
		n += len(clients)
	}
	return n
}

// shutdown, tüm client bağlantılarını kapatır (graceful shutdown).
func (h *Hub) shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range h.clients {
		for client := range clients {
			close(client.send)
		}
	}
	h.clients = make(map[string]map[*Client]bool)
	h.log.Info("hub shut down, all connections closed")
}
