package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/chronos-quests-lambda/internal/middlewares"
	"github.com/saulo-duarte/chronos-quests-lambda/internal/quest"
)

type RouterConfig struct {
	QuestHandler   *quest.Handler
	AllowedOrigins []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware(cfg.AllowedOrigins))

	r.Get("/health", cfg.QuestHandler.Health)
	r.Mount("/", quest.Routes(cfg.QuestHandler))

	return r
}
