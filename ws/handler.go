package ws

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/lezzetkesif/lezzetkesif/models"
)

// TokenValidator, WebSocket handler'ın JWT doğrulaması için kullandığı interface.
// services paketi ws'yi import ettiği için ws services'i import edemez;
// AuthService bu küçük interface'i implicit olarak karşılar.
type TokenValidator interface {
	ValidateAccessToken(tokenString string) (*models.TokenClaims, error)
}

// Handler, WebSocket bağlantı isteklerini işleyen HTTP handler'ı.
type Handler struct {
	hub            *Hub
	tokenValidator TokenValidator
	upgrader       websocket.Upgrader
}

// NewHandler, yeni bir WebSocket handler oluşturur.
// allowedOrigins boşsa tüm origin'lere izin verilir (development).
func NewHandler(hub *Hub, tokenValidator TokenValidator, allowedOrigins []string) *Handler {
	return &Handler{
		hub:            hub,
		tokenValidator: tokenValidator,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

// HandleConnection, HTTP bağlantısını WebSocket'e yükseltir ve client'ı Hub'a kaydeder.
//
// Token opsiyoneldir: ws://server/ws?token=JWT. Site herkese açık olduğundan
// token'sız bağlantılar anonim client olarak kabul edilir. Geçersiz bir token
// ise 401 ile reddedilir.
func (h *Handler) HandleConnection(w http.ResponseWriter, r *http.Request) {
	userID, anonymous := "", true
	if token := r.URL.Query().Get("token"); token != "" {
		claims, err := h.tokenValidator.ValidateAccessToken(token)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}
		userID, anonymous = claims.UserID, false
	}
	if anonymous {
		userID = "anon-" + uuid.NewString()
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.hub.log.Debug("upgrade failed", zap.String("user_id", userID), zap.Error(err))
		return
	}

	client := &Client{
		hub:       h.hub,
		conn:      conn,
		userID:    userID,
		anonymous: anonymous,
		send:      make(chan []byte, sendBufferSize),
	}

	if !h.hub.join(client) {
		conn.Close()
		return
	}

	ready := ReadyData{ClientID: userID, Anonymous: anonymous}
	if !anonymous {
		ready.UserID = userID
	}
	client.sendEvent(Event{Op: OpReady, Data: ready})

	// ReadPump bağlantı kapanana kadar bloklar; WritePump ayrı goroutine'de.
	go client.WritePump()
	client.ReadPump()
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || set[origin]
	}
}
