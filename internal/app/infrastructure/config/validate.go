package config

import (
	"errors"
	"fmt"
	"net"
)

func (m *Manager) validate(cfg *Config) error {
	// app
	validLevels := map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true, "fatal": true}
	if cfg.App.LogLevel != "" && !validLevels[cfg.App.LogLevel] {
		return fmt.Errorf("app.log_level must be one of trace, debug, info, warn, error, fatal; got %s", cfg.App.LogLevel)
	}

	validModes := map[string]bool{"": true, "debug": true, "release": true, "test": true}
	if !validModes[cfg.App.GinMode] {
		return fmt.Errorf("app.gin_mode must be one of debug, release, test; got %s", cfg.App.GinMode)
	}

	// target
	switch cfg.Target.Transport {
	case "", "tcp":
		if cfg.Target.Address == "" {
			return errors.New("target.address is required")
		}
		if _, _, err := net.SplitHostPort(cfg.Target.Address); err != nil {
			return fmt.Errorf("target.address must be host:port; got %s", cfg.Target.Address)
		}
	case "websocket":
		if cfg.Target.URL == "" {
			return errors.New("target.url is required for the websocket transport")
		}
	default:
		return fmt.Errorf("target.transport must be 'tcp' or 'websocket'; got %s", cfg.Target.Transport)
	}

	// corpus
	if cfg.Corpus.ChannelsFile == "" {
		return errors.New("corpus.channels_file is required")
	}

	// session
	if cfg.Session.LogDir == "" {
		cfg.Session.LogDir = "sessions"
	}

	// echo
	if cfg.Echo.Directives == nil {
		cfg.Echo.Directives = make([]string, 0)
	}
	if cfg.Echo.SentDirectives == nil {
		cfg.Echo.SentDirectives = make([]string, 0)
	}

	// http
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = "127.0.0.1:8811"
	}

	return nil
}
