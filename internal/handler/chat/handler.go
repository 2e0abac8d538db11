package chat

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/independencecare/chatdesk/internal/model/chat"
	"github.com/independencecare/chatdesk/internal/model/scenario"
	chatService "github.com/independencecare/chatdesk/internal/service/chat"
	"github.com/independencecare/chatdesk/pkg/utils"
)

// Handler 聊天服务的HTTP处理器
type Handler struct {
	chatSvc *chatService.Service
	scripts scenario.Store
	log     *zap.Logger
}

// New 创建聊天处理器
func New(chatSvc *chatService.Service, scripts scenario.Store, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		chatSvc: chatSvc,
		scripts: scripts,
		log:     log.Named("http.chat"),
	}
}

// RegisterRoutes 注册聊天相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleStatus)
	r.Post("/chat", h.handleChat)
	r.Get("/scenarios", h.handleListScenarios)
}

// handleListScenarios 列出客服脚本
func (h *Handler) handleListScenarios(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.scripts.List())
}

// handleStatus 健康检查
func (h *Handler) handleStatus(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Caregiver chat backend is running",
		"status":  "online",
	})
}

// handleChat 回复一条访客消息
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chat.ChatRequest
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.chatSvc.Respond(r.Context(), payload)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, chatService.ErrMessageRequired) {
			status = http.StatusBadRequest
		} else {
			h.log.Error("respond failed", zap.Error(err))
		}
		utils.RespondError(w, status, err.Error())
		return
	}

	utils.RespondJSON(w, http.StatusOK, resp)
}
