package main

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"nhooyr.io/websocket"

	"github.com/plus3/blockfall/game"
)

// EventMessage is the JSON shape of a game event on the /events stream.
type EventMessage struct {
	Kind    string   `json:"kind"`
	Variant string   `json:"variant"`
	Row     int      `json:"row"`
	Col     int      `json:"col"`
	Cells   [][2]int `json:"cells"`
}

func newEventMessage(ev game.Event) EventMessage {
	cells := make([][2]int, len(ev.Cells))
	for i, c := range ev.Cells {
		cells[i] = [2]int{c.Row, c.Col}
	}
	return EventMessage{
		Kind:    ev.Kind.String(),
		Variant: ev.Variant.String(),
		Row:     ev.Position.Row,
		Col:     ev.Position.Col,
		Cells:   cells,
	}
}

type eventClient struct {
	conn *websocket.Conn
	send chan []byte
}

// EventHub fans game events out to websocket clients. Publish never blocks:
// a client whose buffer is full misses the message.
type EventHub struct {
	logger  *log.Logger
	mu      sync.RWMutex
	clients map[*eventClient]struct{}
}

func NewEventHub(logger *log.Logger) *EventHub {
	return &EventHub{
		logger:  logger,
		clients: map[*eventClient]struct{}{},
	}
}

// Clients returns the number of connected clients.
func (h *EventHub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish is a world listener; it runs on the simulation goroutine.
func (h *EventHub) Publish(ev game.Event) {
	msg, err := json.Marshal(newEventMessage(ev))
	if err != nil {
		h.logger.Printf("encode event: %v", err)
		return
	}

	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.send <- msg:
		default:
		}
	}
	h.mu.RUnlock()
}

// ServeWS upgrades the request and streams events until the client goes away.
func (h *EventHub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}

	client := &eventClient{conn: conn, send: make(chan []byte, 64)}
	h.mu.Lock()
	h.clients[client] = struct{}{}
	h.mu.Unlock()
	h.logger.Printf("events client %s connected", r.RemoteAddr)

	go func() {
		ping := time.NewTicker(15 * time.Second)
		defer func() {
			ping.Stop()
			_ = conn.Close(websocket.StatusNormalClosure, "bye")
		}()
		for {
			select {
			case msg, ok := <-client.send:
				if !ok {
					return
				}
				if err := conn.Write(r.Context(), websocket.MessageText, msg); err != nil {
					return
				}
			case <-ping.C:
				_ = conn.Ping(r.Context())
			}
		}
	}()

	// Clients only listen; reading keeps pings answered and notices the close.
	for {
		if _, _, err := conn.Read(r.Context()); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, client)
	close(client.send)
	h.mu.Unlock()
	h.logger.Printf("events client %s disconnected", r.RemoteAddr)
}
