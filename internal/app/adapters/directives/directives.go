package directives

import (
	"ircfuzz/internal/app/infrastructure/storage"
	"ircfuzz/internal/app/ports"
	"sort"
	"strconv"
	"sync/atomic"
	"time"
)

// Log keeps the last matched server lines in a TTL cache so the status API
// can show what the target has been saying without touching the fuzz loop.
type Log struct {
	cache *storage.Cache[ports.Directive]
	seq   atomic.Int64
}

func New(capacity int, ttl time.Duration) *Log {
	return &Log{
		cache: storage.NewCache[ports.Directive](capacity, ttl, false, false, "", 0),
	}
}

func (l *Log) Add(line string) {
	key := strconv.FormatInt(l.seq.Add(1), 10)
	l.cache.Set(key, ports.Directive{Line: line, At: time.Now()})
}

func (l *Log) Recent() []ports.Directive {
	items := l.cache.Items()

	out := make([]ports.Directive, 0, len(items))
	for _, d := range items {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].At.Before(out[j].At)
	})

	return out
}
