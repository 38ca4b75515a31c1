package app

import (
	"github.com/gin-gonic/gin"
	"ircfuzz/internal/app/adapters/directives"
	"ircfuzz/internal/app/adapters/driver"
	router "ircfuzz/internal/app/adapters/http"
	"ircfuzz/internal/app/adapters/metrics"
	"ircfuzz/internal/app/adapters/transcript"
	"ircfuzz/internal/app/adapters/transport"
	"ircfuzz/internal/app/domain/randx"
	"ircfuzz/internal/app/domain/session"
	"ircfuzz/internal/app/domain/synth"
	"ircfuzz/internal/app/infrastructure/config"
	"ircfuzz/internal/app/infrastructure/corpus"
	"ircfuzz/internal/app/infrastructure/storage"
	"ircfuzz/internal/app/ports"
	"ircfuzz/pkg/logger"
	"log/slog"
	"os"
	"time"
)

const configPath = "config.json"

// New wires one fuzz run and blocks on it. A nil return means the run
// terminated itself; an error means the transport gave out.
func New() error {
	log := logger.New()

	manager, err := config.New(configPath)
	if err != nil {
		log.Fatal("Error loading config", err)
	}

	cfg := manager.Get()
	log.SetLogLevel(cfg.App.LogLevel)
	gin.SetMode(cfg.App.GinMode)

	for _, dir := range []string{"cache", cfg.Session.LogDir} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0700); err != nil {
				log.Error("Error creating directory", err, slog.String("dir", dir))
				return err
			}
		} else if err != nil {
			log.Error("Error stat directory", err, slog.String("dir", dir))
			return err
		}
	}

	pool, err := corpus.Load(cfg.Corpus.ChannelsFile, cfg.Corpus.NicksFile)
	if err != nil {
		log.Fatal("Error loading corpus", err)
	}

	rng := randx.New()
	sess := session.New(rng, pool.Union())
	metrics.PacingSeed.Set(float64(sess.PacingSeed))

	var conn ports.TransportPort
	switch cfg.Target.Transport {
	case "websocket":
		conn = transport.NewWebSocket(log, cfg.Target.URL)
	default:
		conn = transport.NewTCP(log, cfg.Target.Address, cfg.Target.TLS)
	}
	defer conn.Close()

	tape := transcript.Open(log, cfg.Session.LogDir, sess.Nick)
	defer tape.Close()

	dirs := directives.New(256, 15*time.Minute)
	history := storage.NewCache[session.Snapshot](0, 0, true, true, "cache/stats.json", 0)
	defer func() {
		history.Set(sess.ID, sess.Stats().Snapshot())
		history.Close()
	}()

	go func() {
		for range time.Tick(30 * time.Second) {
			history.Set(sess.ID, sess.Stats().Snapshot())
		}
	}()

	r, err := router.NewRouter(log, manager, sess, dirs, tape)
	if err != nil {
		return err
	}
	go func() {
		if err := r.Run(); err != nil {
			log.Error("HTTP server stopped", err)
		}
	}()

	prefixedLog := logger.NewPrefixedLogger(log, sess.Nick)
	d := driver.New(prefixedLog, cfg, sess, synth.New(rng, pool.Union(), synth.DefaultParams()), rng, conn, tape, dirs)
	return d.Run()
}
