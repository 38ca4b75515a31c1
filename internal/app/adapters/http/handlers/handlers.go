package handlers

import (
	"ircfuzz/internal/app/domain/session"
	"ircfuzz/internal/app/infrastructure/config"
	"ircfuzz/internal/app/ports"
	"ircfuzz/pkg/logger"
)

type Handlers struct {
	log        logger.Logger
	manager    *config.Manager
	sess       *session.Session
	directives ports.DirectivesPort
	transcript ports.TranscriptPort
}

func New(log logger.Logger, manager *config.Manager, sess *session.Session, directives ports.DirectivesPort, transcript ports.TranscriptPort) *Handlers {
	return &Handlers{
		log:        log,
		manager:    manager,
		sess:       sess,
		directives: directives,
		transcript: transcript,
	}
}
