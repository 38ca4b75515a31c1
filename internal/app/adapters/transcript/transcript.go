package transcript

import (
	"ircfuzz/pkg/logger"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Transcript appends raw session bytes to a flat file, nothing framed,
// nothing rotated. When the file cannot be opened the sink degrades to a
// no-op and the run continues without a record.
type Transcript struct {
	log  logger.Logger
	f    *os.File
	path string
}

// Open derives the transcript path from the session nickname. A failed
// open is reported once and yields the degraded sink.
func Open(log logger.Logger, dir, nick string) *Transcript {
	name := strings.NewReplacer("/", "_", "\\", "_").Replace(nick)
	t := &Transcript{log: log, path: filepath.Join(dir, name+".log")}

	f, err := os.OpenFile(t.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Warn("Session log unavailable, continuing without record", slog.String("path", t.path), slog.String("error", err.Error()))
		return t
	}

	t.f = f
	return t
}

func (t *Transcript) Record(p []byte) {
	if t.f == nil || len(p) == 0 {
		return
	}

	_, _ = t.f.Write(p)
}

func (t *Transcript) Path() string {
	return t.path
}

func (t *Transcript) Close() error {
	if t.f == nil {
		return nil
	}

	return t.f.Close()
}
