package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/independencecare/chatdesk/internal/model/chat"
	chatService "github.com/independencecare/chatdesk/internal/service/chat"
)

const (
	readTimeout  = 60 * time.Second
	pingInterval = 54 * time.Second
)

// Handler WebSocket聊天处理器
type Handler struct {
	chatSvc  *chatService.Service
	log      *zap.Logger
	upgrader websocket.Upgrader
}

// New 创建WebSocket处理器
func New(chatSvc *chatService.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		chatSvc: chatSvc,
		log:     log.Named("ws"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes 注册WebSocket路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws", h.handleWebSocket)
}

type inboundMessage struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

type outgoingMessage struct {
	Type      string      `json:"type"`
	ConnID    string      `json:"connId,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	log := h.log.With(zap.String("conn", connID))
	log.Info("connection opened")

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(readTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readTimeout))
		return nil
	})

	// gorilla allows one concurrent writer; pings go through WriteControl.
	go pingLoop(ctx, conn)

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("read error", zap.Error(err))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(readTimeout))

		reply := h.handleFrame(ctx, raw)
		reply.ConnID = connID
		reply.Timestamp = time.Now().Unix()
		if err := conn.WriteJSON(reply); err != nil {
			log.Warn("write failed", zap.Error(err))
			return
		}
	}
}

func (h *Handler) handleFrame(ctx context.Context, raw []byte) outgoingMessage {
	var msg inboundMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		return errorMessage("malformed frame")
	}
	if msg.Type != "chat" {
		return errorMessage("unsupported message type: " + msg.Type)
	}

	var req chat.ChatRequest
	if err := json.Unmarshal(msg.Data, &req); err != nil {
		return errorMessage("invalid chat request")
	}

	resp, err := h.chatSvc.Respond(ctx, req)
	if err != nil {
		if errors.Is(err, chatService.ErrMessageRequired) {
			return errorMessage(err.Error())
		}
		h.log.Error("respond failed", zap.Error(err))
		return errorMessage("chat failed")
	}
	return outgoingMessage{Type: "reply", Data: resp}
}

func errorMessage(message string) outgoingMessage {
	return outgoingMessage{Type: "error", Data: map[string]string{"message": message}}
}

// pingLoop 定期发送ping消息
func pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(10*time.Second)); err != nil {
				return
			}
		}
	}
}
