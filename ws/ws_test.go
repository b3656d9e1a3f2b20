package ws

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lezzetkesif/lezzetkesif/models"
)

type fakeValidator struct{}

func (fakeValidator) ValidateAccessToken(token string) (*models.TokenClaims, error) {
	if token != "good" {
		return nil, errors.New("bad token")
	}
	return &models.TokenClaims{UserID: "1", Email: "test@example.com"}, nil
}

type recordingSink struct {
	mu   sync.Mutex
	keys []string
}

func (s *recordingSink) Publish(key string, _ any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = append(s.keys, key)
	return nil
}

func startHub(t *testing.T, sink EventSink) (*Hub, *httptest.Server) {
	t.Helper()
	hub := NewHub(zaptest.NewLogger(t), sink)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = hub.Run(ctx) }()

	srv := httptest.NewServer(http.HandlerFunc(NewHandler(hub, fakeValidator{}, nil).HandleConnection))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/" + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev map[string]any
	require.NoError(t, conn.ReadJSON(&ev))
	return ev
}

func TestAnonymousClientReceivesBroadcast(t *testing.T) {
	sink := &recordingSink{}
	hub, srv := startHub(t, sink)
	conn := dial(t, srv, "")

	ready := readEvent(t, conn)
	assert.Equal(t, OpReady, ready["op"])
	d := ready["d"].(map[string]any)
	assert.Equal(t, true, d["anonymous"])
	assert.True(t, strings.HasPrefix(d["client_id"].(string), "anon-"))

	require.Eventually(t, func() bool { return hub.ConnectionCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastToAll(Event{Op: OpRestaurantDelete, Data: DeletedData{ID: "5"}})
	ev := readEvent(t, conn)
	assert.Equal(t, OpRestaurantDelete, ev["op"])
	assert.Equal(t, "5", ev["d"].(map[string]any)["id"])

	sink.mu.Lock()
	defer sink.mu.Unlock()
	assert.Equal(t, []string{OpRestaurantDelete}, sink.keys)
}

func TestAuthenticatedClientAndUserEvents(t *testing.T) {
	hub, srv := startHub(t, nil)
	conn := dial(t, srv, "?token=good")

	ready := readEvent(t, conn)
	d := ready["d"].(map[string]any)
	assert.Equal(t, false, d["anonymous"])
	assert.Equal(t, "1", d["user_id"])

	require.Eventually(t, func() bool { return hub.ConnectionCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.BroadcastToUser("1", Event{Op: OpReviewUpdate})
	assert.Equal(t, OpReviewUpdate, readEvent(t, conn)["op"])
}

func TestInvalidTokenIsRejected(t *testing.T) {
	_, srv := startHub(t, nil)
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?token=bad"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestHeartbeatIsAcknowledged(t *testing.T) {
	_, srv := startHub(t, nil)
	conn := dial(t, srv, "")
	readEvent(t, conn) // ready

	require.NoError(t, conn.WriteJSON(Event{Op: OpHeartbeat}))
	assert.Equal(t, OpHeartbeatAck, readEvent(t, conn)["op"])
}

func TestOriginChecker(t *testing.T) {
	check := originChecker([]string{"https://lezzetkesif.app"})
	r := httptest.NewRequest("GET", "/ws", nil)
	assert.True(t, check(r))
	r.Header.Set("Origin", "https://lezzetkesif.app")
	assert.True(t, check(r))
	r.Header.Set("Origin", "https://evil.example")
	assert.False(t, check(r))
}
