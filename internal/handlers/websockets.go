package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"betterrest/internal/estimator"
	"betterrest/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/gorilla/websocket"
)

// Send/receive timing configuration and message size limits.
const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB

	envelopeAlert = "alert"
	envelopeError = "error"
)

// Envelope used for WebSocket messages.
type wsEnvelope struct {
	Type  string      `json:"type"`
	Data  interface{} `json:"data,omitempty"`
	Error string      `json:"error,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // TODO: restrict origins once the web client has a fixed host
}

// wsConnect streams a live preview: every inputs message from the client is
// answered with the alert the Calculate button would show. Nothing is stored.
func (h *Handler) wsConnect(c *gin.Context) {
	registerValidators()
	clock := h.clockFor(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMsgSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	// Reader goroutine decodes requests and detects disconnects.
	requests := make(chan wsEnvelope)
	done := make(chan struct{})
	go h.startReader(conn, clock, requests, done)

	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	// Initial preview for the default form.
	if err := h.writeEnvelope(conn, h.preview(models.DefaultInputs(), clock)); err != nil {
		if h.log != nil {
			h.log.Infow("ws_write_failed_initial", "err", err)
		}
		return
	}

	for {
		select {
		case <-done:
			return
		case <-c.Request.Context().Done():
			return
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				if h.log != nil {
					h.log.Infow("ws_ping_failed", "err", err)
				}
				return
			}
		case env := <-requests:
			if err := h.writeEnvelope(conn, env); err != nil {
				if h.log != nil {
					h.log.Infow("ws_write_failed", "err", err)
				}
				return
			}
		}
	}
}

// startReader turns each text message into a reply envelope.
func (h *Handler) startReader(conn *websocket.Conn, clock estimator.Clock, out chan<- wsEnvelope, done chan<- struct{}) {
	defer close(done)
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if h.log != nil {
				h.log.Infow("ws_read_closed", "err", err)
			}
			return
		}
		in, err := decodePreviewRequest(msg)
		env := wsEnvelope{Type: envelopeError}
		if err != nil {
			env.Error = errInvalidBodyPref + err.Error()
		} else {
			env = h.preview(in, clock)
		}
		select {
		case out <- env:
		case <-time.After(writeWait):
			return
		}
	}
}

func decodePreviewRequest(msg []byte) (models.UserInputs, error) {
	var req InputsRequest
	if err := json.Unmarshal(msg, &req); err != nil {
		return models.UserInputs{}, err
	}
	if err := binding.Validator.ValidateStruct(&req); err != nil {
		return models.UserInputs{}, err
	}
	return req.toInputs()
}

func (h *Handler) preview(in models.UserInputs, clock estimator.Clock) wsEnvelope {
	return wsEnvelope{Type: envelopeAlert, Data: h.services.Preview(in, clock)}
}

func (h *Handler) writeEnvelope(conn *websocket.Conn, env wsEnvelope) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(env)
}
