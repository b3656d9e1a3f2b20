package ws

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WebSocket bağlantı sabitleri
const (
	// writeWait: Bir mesajı yazmak için maksimum bekleme süresi.
	writeWait = 10 * time.Second

	// pongWait: 3 heartbeat kaçırma = 30s × 3 = 90s.
	pongWait = 90 * time.Second

	// maxMessageSize: Client'tan gelen mesajlar sadece heartbeat'tir.
	maxMessageSize = 1024

	// sendBufferSize: Buffer doluysa client yavaştır ve disconnect edilir.
	sendBufferSize = 64
)

// Client, tek bir WebSocket bağlantısını temsil eder.
//
// Her bağlantı için iki goroutine çalışır: ReadPump client'tan okur,
// WritePump Hub'dan gelenleri yazar. gorilla/websocket aynı anda tek okuyucu
// ve tek yazıcıya izin verir.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	userID    string
	anonymous bool
	send      chan []byte
	mu        sync.Mutex // conn.WriteMessage çağrılarını korur
}

// ReadPump, bağlantı kapanana kadar client mesajlarını okur.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.leave(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.hub.log.Warn("failed to set read deadline", zap.String("user_id", c.userID), zap.Error(err))
		return
	}

	for {
		_, rawMessage, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Debug("unexpected close", zap.String("user_id", c.userID), zap.Error(err))
			}
			return
		}

		var event Event
		if err := json.Unmarshal(rawMessage, &event); err != nil {
			c.hub.log.Debug("invalid message", zap.String("user_id", c.userID), zap.Error(err))
			continue
		}

		c.handleEvent(event)
	}
}

// handleEvent, client'tan gelen event'leri işler. Site verisi sadece HTTP ile
// değişir; WS üzerinden gelen tek anlamlı mesaj heartbeat'tir.
func (c *Client) handleEvent(event Event) {
	switch event.Op {
	case OpHeartbeat:
		if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			return
		}
		c.sendEvent(Event{Op: OpHeartbeatAck})

	default:
		c.hub.log.Debug("unknown op", zap.String("user_id", c.userID), zap.String("op", event.Op))
	}
}

// sendEvent, client'a tek bir event gönderir.
func (c *Client) sendEvent(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	select {
	case c.send <- data:
	default:
		c.hub.log.Debug("send buffer full, dropping connection", zap.String("user_id", c.userID))
		go c.hub.leave(c)
	}
}

// WritePump, send channel'ından gelenleri bağlantıya yazar.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for {
		message, ok := <-c.send
		if !ok {
			// Hub client'ı çıkardı
			_ = c.writeMessage(websocket.CloseMessage, nil)
			return
		}

		if err := c.writeMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

func (c *Client) writeMessage(messageType int, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(messageType, data)
}
