package site

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/mownders/academy/internal/ui"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveRequest is the incoming WebSocket message format.
type liveRequest struct {
	Type  string `json:"type"` // "visible", "hidden" or "select"
	Index *int   `json:"index,omitempty"`
}

// liveEvent is the outgoing WebSocket message format.
type liveEvent struct {
	Type  string `json:"type"` // "index" or "error"
	Index int    `json:"index"`
	Count int    `json:"count,omitempty"`
	Error string `json:"error,omitempty"`
}

// handleLive drives one carousel per connection. The carousel's timer only
// runs while the client reports the section visible and is released when
// the connection ends.
func (h *Handler) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("site: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	n := len(h.holder.Get().Testimonials.Items)

	// Changes are coalesced: the writer always sends the latest index.
	changed := make(chan struct{}, 1)
	errs := make(chan string, 4)
	car := ui.NewCarousel(n,
		ui.WithInterval(h.interval),
		ui.WithScheduler(h.sched),
		ui.WithOnChange(func(int) {
			select {
			case changed <- struct{}{}:
			default:
			}
		}),
	)

	done := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		if err := conn.WriteJSON(liveEvent{Type: "index", Index: car.Current(), Count: n}); err != nil {
			log.Printf("site: websocket write: %v", err)
			return
		}
		for {
			var ev liveEvent
			select {
			case <-done:
				return
			case <-changed:
				ev = liveEvent{Type: "index", Index: car.Current(), Count: n}
			case msg := <-errs:
				ev = liveEvent{Type: "error", Error: msg}
			}
			if err := conn.WriteJSON(ev); err != nil {
				log.Printf("site: websocket write: %v", err)
				return
			}
		}
	}()

	defer func() {
		car.Close()
		close(done)
		<-writerDone
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("site: websocket read: %v", err)
			}
			return
		}

		var req liveRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			sendError(errs, "invalid message format")
			continue
		}

		switch req.Type {
		case "visible":
			car.Activate()
		case "hidden":
			car.Deactivate()
		case "select":
			if req.Index == nil || !car.SelectIndex(*req.Index) {
				sendError(errs, "index out of range")
			}
		default:
			sendError(errs, "unknown message type: "+req.Type)
		}
	}
}

func sendError(errs chan<- string, msg string) {
	select {
	case errs <- msg:
	default:
	}
}
