package visit

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/independencecare/chatdesk/internal/model/visit"
	visitService "github.com/independencecare/chatdesk/internal/service/visit"
	"github.com/independencecare/chatdesk/pkg/utils"
)

// Handler 处理护理员打卡事件
type Handler struct {
	visitSvc *visitService.Service
	log      *zap.Logger
}

// New 创建打卡处理器
func New(visitSvc *visitService.Service, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{visitSvc: visitSvc, log: log.Named("http.visit")}
}

// RegisterRoutes 注册打卡相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/clock-in", h.handleClockIn)
	r.Post("/clock-out", h.handleClockOut)
	r.Post("/duplicate-call", h.handleDuplicate)
}

func (h *Handler) handleClockIn(w http.ResponseWriter, r *http.Request) {
	var payload visit.ClockInRequest
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.respond(r.Context(), w, func(ctx context.Context) (visit.ScenarioResponse, error) {
		return h.visitSvc.ClockIn(ctx, payload)
	})
}

func (h *Handler) handleClockOut(w http.ResponseWriter, r *http.Request) {
	var payload visit.ClockOutRequest
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	h.respond(r.Context(), w, func(ctx context.Context) (visit.ScenarioResponse, error) {
		return h.visitSvc.ClockOut(ctx, payload)
	})
}

func (h *Handler) handleDuplicate(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.visitSvc.Duplicate())
}

func (h *Handler) respond(ctx context.Context, w http.ResponseWriter, evaluate func(context.Context) (visit.ScenarioResponse, error)) {
	resp, err := evaluate(ctx)
	if err != nil {
		if errors.Is(err, visitService.ErrInvalidRequest) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("visit evaluation failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "visit evaluation failed")
		return
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}
