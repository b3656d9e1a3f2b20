package services

import (
	"github.com/lezzetkesif/lezzetkesif/ws"
)

// publish, hub nil değilse event yayınlar. Testlerde ve CLI komutlarında hub yoktur.
func publish(hub ws.EventPublisher, op string, data any) {
	if hub == nil {
		return
	}
	hub.BroadcastToAll(ws.Event{Op: op, Data: data})
}
