package driver

import (
	"fmt"
	"golang.org/x/time/rate"
	"ircfuzz/internal/app/adapters/metrics"
	"ircfuzz/internal/app/domain/randx"
	"ircfuzz/internal/app/domain/session"
	"ircfuzz/internal/app/domain/synth"
	"ircfuzz/internal/app/infrastructure/config"
	"ircfuzz/internal/app/ports"
	"ircfuzz/pkg/logger"
	"log/slog"
	"strings"
	"time"
)

const (
	// TerminationProb is the per-iteration chance of the clean exit,
	// drawn after synthesis and before the send.
	TerminationProb = 1.0 / 300

	// pacingUnitMicros scales the pacing seed into the sleep bound.
	pacingUnitMicros = 1_000_000

	recvBufferSize = 4096
)

// Driver owns the connection lifecycle and the fuzz loop: pause, drain,
// synthesize, maybe terminate, send. Single-threaded; nothing it owns is
// shared with other goroutines.
type Driver struct {
	log logger.Logger
	cfg *config.Config

	rng        *randx.Rand
	sess       *session.Session
	synth      *synth.Synthesizer
	transport  ports.TransportPort
	transcript ports.TranscriptPort
	directives ports.DirectivesPort

	echoLimiter     *rate.Limiter
	sleep           func(time.Duration)
	terminationProb float64
	lastProgress    time.Time
}

func New(log logger.Logger, cfg *config.Config, sess *session.Session, s *synth.Synthesizer, rng *randx.Rand,
	transport ports.TransportPort, transcript ports.TranscriptPort, directives ports.DirectivesPort) *Driver {
	return &Driver{
		log:             log,
		cfg:             cfg,
		rng:             rng,
		sess:            sess,
		synth:           s,
		transport:       transport,
		transcript:      transcript,
		directives:      directives,
		echoLimiter:     rate.NewLimiter(rate.Every(time.Second), 10),
		sleep:           time.Sleep,
		terminationProb: TerminationProb,
		lastProgress:    time.Now(),
	}
}

// Run drives the session until the termination draw fires (nil) or the
// transport faults (error). There is no reconnect path; a dropped
// connection ends the run.
func (d *Driver) Run() error {
	if err := d.transport.Dial(); err != nil {
		d.log.Warn("Target not reachable, continuing unconnected", slog.String("address", d.cfg.Target.Address), slog.String("error", err.Error()))
	}

	d.log.Info("Session started",
		slog.String("id", d.sess.ID),
		slog.String("nick", d.sess.Nick),
		slog.Int("pacing_seed", d.sess.PacingSeed),
		slog.String("transcript", d.transcript.Path()),
	)

	if err := d.handshake(); err != nil {
		return err
	}

	buf := make([]byte, recvBufferSize)
	for {
		d.pause()

		if err := d.drain(buf); err != nil {
			return fmt.Errorf("recv: %w", err)
		}

		msg := d.synth.Next()

		if d.rng.Chance(d.terminationProb) {
			metrics.SelfTerminations.Inc()
			d.log.Info("Session self-terminated", slog.String("id", d.sess.ID), slog.Int64("iterations", d.sess.Stats().Snapshot().Iterations))
			return nil
		}

		if err := d.send(msg); err != nil {
			return fmt.Errorf("send: %w", err)
		}

		d.sess.Stats().AddIteration()
		metrics.Iterations.Inc()
		d.progress()
	}
}

// handshake introduces the client unconditionally; no acknowledgment is
// awaited before fuzzing starts.
func (d *Driver) handshake() error {
	if err := d.writeLine(fmt.Sprintf("NICK %s", d.sess.Nick)); err != nil {
		return fmt.Errorf("handshake: %w", err)
	}
	if err := d.writeLine(fmt.Sprintf("USER %s . . :%s", d.sess.User, d.sess.Realname)); err != nil {
		return fmt.Errorf("handshake: %w", err)
	}

	return nil
}

// pause sleeps a uniform draw below seed*1e6 microseconds; a zero seed
// does not pause at all.
func (d *Driver) pause() {
	if d.sess.PacingSeed == 0 {
		return
	}

	us := d.rng.Intn(d.sess.PacingSeed * pacingUnitMicros)
	d.sleep(time.Duration(us) * time.Microsecond)
}

func (d *Driver) drain(buf []byte) error {
	ready, err := d.transport.Poll()
	if err != nil {
		return err
	}
	if !ready {
		return nil
	}

	n, err := d.transport.Recv(buf)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	data := buf[:n]
	d.transcript.Record(data)
	d.sess.Stats().AddReceived(n)
	metrics.BytesReceived.Add(float64(n))
	d.echoInbound(data)

	return nil
}

func (d *Driver) send(msg *synth.Message) error {
	if msg.Corrupted {
		d.sess.Stats().AddCorrupted()
		metrics.CorruptedMessages.Inc()
	}

	return d.writeRaw(msg.Raw)
}

func (d *Driver) writeLine(line string) error {
	return d.writeRaw(line + "\r\n")
}

// writeRaw pushes one terminated line. A short accept drops the line from
// the record and moves on; only transport faults propagate.
func (d *Driver) writeRaw(raw string) error {
	p := []byte(raw)

	n, err := d.transport.Send(p)
	if err != nil {
		return err
	}
	if n != len(p) {
		d.sess.Stats().AddDropped()
		metrics.DroppedSends.Inc()
		return nil
	}

	d.transcript.Record(p)
	d.sess.Stats().AddSent(n)
	metrics.MessagesSent.Inc()
	metrics.BytesSent.Add(float64(n))
	d.echoSent(raw)

	return nil
}

// echoInbound surfaces directive-looking lines on the console, throttled;
// the transcript already has the bytes. PING is surfaced like any other
// directive and never answered.
func (d *Driver) echoInbound(data []byte) {
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !containsAny(line, d.cfg.Echo.Directives) {
			continue
		}

		d.directives.Add(line)
		d.sess.Stats().AddDirective()
		metrics.ServerDirectives.Inc()

		if d.echoLimiter.Allow() {
			d.log.Info("Server directive", slog.String("line", line))
		}
	}
}

func (d *Driver) echoSent(raw string) {
	line := strings.TrimSpace(raw)
	for _, prefix := range d.cfg.Echo.SentDirectives {
		if strings.HasPrefix(line, prefix) {
			if d.echoLimiter.Allow() {
				d.log.Info("Sent directive", slog.String("line", line))
			}
			return
		}
	}
}

// progress drops a status line twice a minute at most.
func (d *Driver) progress() {
	if time.Since(d.lastProgress) < 30*time.Second {
		return
	}
	d.lastProgress = time.Now()

	snap := d.sess.Stats().Snapshot()
	d.log.Info("Session progress",
		slog.Int64("iterations", snap.Iterations),
		slog.Int64("sent", snap.Sent),
		slog.Int64("received_bytes", snap.ReceivedBytes),
		slog.Int64("corrupted", snap.Corrupted),
		slog.Int64("dropped", snap.Dropped),
	)
}

func containsAny(line string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(line, sub) {
			return true
		}
	}

	return false
}
