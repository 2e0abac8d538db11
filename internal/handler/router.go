package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/independencecare/chatdesk/internal/handler/chat"
	"github.com/independencecare/chatdesk/internal/handler/visit"
	"github.com/independencecare/chatdesk/internal/handler/ws"
	middlewarePkg "github.com/independencecare/chatdesk/internal/middleware"
	"github.com/independencecare/chatdesk/internal/model/scenario"
	chatService "github.com/independencecare/chatdesk/internal/service/chat"
	visitService "github.com/independencecare/chatdesk/internal/service/visit"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(scripts scenario.Store, chatSvc *chatService.Service, visitSvc *visitService.Service, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger(log.Named("http")))
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	// The widget posts to the root paths, not under /api.
	chat.New(chatSvc, scripts, log).RegisterRoutes(r)
	visit.New(visitSvc, log).RegisterRoutes(r)
	ws.New(chatSvc, log).RegisterRoutes(r)

	return r
}
