package http

import (
	"crypto/rand"
	"encoding/base64"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"ircfuzz/internal/app/adapters/http/handlers"
	"ircfuzz/internal/app/adapters/http/middlewares"
	"ircfuzz/internal/app/domain/session"
	"ircfuzz/internal/app/infrastructure/config"
	"ircfuzz/internal/app/ports"
	"ircfuzz/pkg/logger"
	"log/slog"
)

type Router struct {
	router      *gin.Engine
	handlers    *handlers.Handlers
	middlewares *middlewares.Middlewares

	log     logger.Logger
	manager *config.Manager
}

func NewRouter(log logger.Logger, manager *config.Manager, sess *session.Session, directives ports.DirectivesPort, transcript ports.TranscriptPort) (*Router, error) {
	r := &Router{
		router:      gin.Default(),
		handlers:    handlers.New(log, manager, sess, directives, transcript),
		middlewares: middlewares.New(),
		log:         log,
		manager:     manager,
	}
	cfg := manager.Get()

	token := cfg.HTTP.AuthToken
	if token == "" {
		var err error
		token, err = generateSecureRandomString(52)
		if err != nil {
			log.Error("Failed to generate secure random string", err)
			return nil, err
		}
		log.Warn("HTTP auth token not set, generated one for this run", slog.String("token", token))
	}

	pprofGroup := r.router.Group("/", gin.BasicAuth(gin.Accounts{
		"admin": token,
	}))
	pprof.Register(pprofGroup)

	r.router.GET("/metrics", gin.BasicAuth(gin.Accounts{
		"admin": token,
	}), gin.WrapH(promhttp.Handler()))

	api := r.router.Group("/api", r.middlewares.Auth(token))
	api.GET("/status", r.handlers.StatusHandler)
	api.GET("/directives", r.handlers.DirectivesHandler)

	return r, nil
}

func (r *Router) Run() error {
	return r.router.Run(r.manager.Get().HTTP.Addr)
}

func generateSecureRandomString(length int) (string, error) {
	bytes := make([]byte, (length*3)/4)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes)[:length], nil
}
