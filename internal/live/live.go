// Package live streams browser signals to a page view over a WebSocket and
// pushes the view's state changes back.
package live

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Zachkp/portfolio/internal/page"
	"github.com/Zachkp/portfolio/internal/tracker"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// maxFrameSize bounds one client frame.
const maxFrameSize = 16 << 10

// clientFrame is the incoming WebSocket message format.
type clientFrame struct {
	Type    string                `json:"type"` // scroll, pointer, resize, visibility, menu, navigate
	Offset  float64               `json:"offset,omitempty"`
	X       float64               `json:"x,omitempty"`
	Y       float64               `json:"y,omitempty"`
	Width   float64               `json:"width,omitempty"`
	Entries []tracker.Measurement `json:"entries,omitempty"`
	Section string                `json:"section,omitempty"`
}

// serverFrame is the outgoing WebSocket message format.
type serverFrame struct {
	Type    string         `json:"type"` // hello, state, scroll or error
	ViewID  string         `json:"view,omitempty"`
	State   *page.Snapshot `json:"state,omitempty"`
	Section string         `json:"section,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// SectionHook is told when a view's active section changes.
type SectionHook func(viewID string, ch tracker.Change)

// Handler serves one page view per WebSocket connection.
type Handler struct {
	catalog   *tracker.Catalog
	opts      page.Options
	onSection SectionHook
}

// NewHandler returns a handler creating views over catalog. onSection may
// be nil.
func NewHandler(catalog *tracker.Catalog, opts page.Options, onSection SectionHook) *Handler {
	return &Handler{catalog: catalog, opts: opts, onSection: onSection}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("live: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxFrameSize)

	// The read loop below is the only goroutine touching view and conn.
	viewID := uuid.NewString()
	view := page.NewView(h.catalog, h.opts)
	view.Subscribe(page.Listener{
		State: func(s page.Snapshot) {
			send(conn, serverFrame{Type: "state", State: &s})
		},
		ScrollTo: func(section string) {
			send(conn, serverFrame{Type: "scroll", Section: section})
		},
		SectionChange: func(ch tracker.Change) {
			if h.onSection != nil {
				h.onSection(viewID, ch)
			}
		},
	})

	initial := view.Snapshot()
	send(conn, serverFrame{Type: "hello", ViewID: viewID, State: &initial})

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("live: websocket read: %v", err)
			}
			return
		}

		var f clientFrame
		if err := json.Unmarshal(msg, &f); err != nil {
			send(conn, serverFrame{Type: "error", Error: "invalid message format"})
			continue
		}
		sig, ok := f.signal()
		if !ok {
			send(conn, serverFrame{Type: "error", Error: "unknown message type: " + f.Type})
			continue
		}
		view.Dispatch(sig)
	}
}

func (f clientFrame) signal() (page.Signal, bool) {
	switch f.Type {
	case "scroll":
		return page.Scroll{Offset: f.Offset}, true
	case "pointer":
		return page.PointerMove{X: f.X, Y: f.Y}, true
	case "resize":
		return page.Resize{Width: f.Width}, true
	case "visibility":
		return page.Visibility{Entries: f.Entries}, true
	case "menu":
		return page.ToggleMenu{}, true
	case "navigate":
		return page.Navigate{SectionID: f.Section}, true
	}
	return nil, false
}

func send(conn *websocket.Conn, f serverFrame) {
	if err := conn.WriteJSON(f); err != nil {
		log.Printf("live: websocket write: %v", err)
	}
}
