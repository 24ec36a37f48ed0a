package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/gregory413b/voicementor2/internal/infrastructure/realtime"
	"github.com/gregory413b/voicementor2/internal/middleware"
)

// ConversationSocketController handles the websocket endpoint for realtime
// notifications. The socket is push-only: membership is resolved server-side
// per event, so clients never subscribe to anything and cannot widen what
// they receive.
type ConversationSocketController struct {
	hub *realtime.Hub
}

func NewConversationSocketController(hub *realtime.Hub) *ConversationSocketController {
	return &ConversationSocketController{hub: hub}
}

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins for now; plug a proper checker when deployed
		// behind a known frontend origin.
		return true
	},
}

type ackFrame struct {
	Type string `json:"type"`
}

type errorFrame struct {
	Type  string `json:"type"`
	Code  string `json:"code"`
	Error string `json:"error"`
}

const defaultReadTimeout = 60 * time.Second

// Handle upgrades the connection and keeps it attached to the hub until the
// client disconnects. Inbound frames are limited to pings.
func (ctl *ConversationSocketController) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := middleware.Principal(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		ws, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade already wrote the response; just return.
			return
		}

		conn := realtime.NewConnection(principal.ID, ws)
		ctl.hub.Attach(conn)
		defer func() {
			ctl.hub.Detach(conn)
			conn.Close(websocket.CloseNormalClosure, "session closed")
		}()

		ws.SetReadLimit(1 << 16)
		_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		ws.SetPongHandler(func(string) error {
			return ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))
		})

		if payload, err := json.Marshal(ackFrame{Type: "connected"}); err == nil {
			_ = conn.Send(payload)
		}

		for {
			_, data, err := ws.ReadMessage()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) ||
					errors.Is(err, websocket.ErrCloseSent) {
					return
				}
				return
			}
			_ = ws.SetReadDeadline(time.Now().Add(defaultReadTimeout))

			var frame struct {
				Type string `json:"type"`
			}
			if err := json.Unmarshal(data, &frame); err != nil || frame.Type != "ping" {
				ctl.replyError(conn, "unsupported_type", "this socket is push-only")
				continue
			}
			if payload, err := json.Marshal(ackFrame{Type: "pong"}); err == nil {
				_ = conn.Send(payload)
			}
		}
	}
}

func (ctl *ConversationSocketController) replyError(conn *realtime.Connection, code, message string) {
	frame := errorFrame{Type: "error", Code: code, Error: message}
	if payload, err := json.Marshal(frame); err == nil {
		_ = conn.Send(payload)
	}
}
