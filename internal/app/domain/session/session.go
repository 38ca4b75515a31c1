package session

import (
	"github.com/google/uuid"
	"ircfuzz/internal/app/domain/randx"
	"time"
)

// PacingSeedBound is the exclusive upper bound of the per-run pacing seed
// draw.
const PacingSeedBound = 20

var realnameShape = randx.Shape{{randx.Upper, 2}, {randx.Lower, 2}, {randx.Any, 1}, {randx.Lower, 2}, {randx.Digit, 1}}

// Session fixes the identity of one run: what the client calls itself, its
// pacing seed and when it started. Everything is drawn once at startup and
// never re-randomized.
type Session struct {
	ID         string
	Nick       string
	User       string
	Realname   string
	PacingSeed int
	StartedAt  time.Time

	stats *Stats
}

// New draws the run identity from the combined identifier pool. Nick and
// user are independent draws and may come out identical.
func New(rng *randx.Rand, pool []string) *Session {
	return &Session{
		ID:         uuid.NewString(),
		Nick:       pool[rng.Intn(len(pool))],
		User:       pool[rng.Intn(len(pool))],
		Realname:   rng.Pattern(realnameShape),
		PacingSeed: rng.Intn(PacingSeedBound),
		StartedAt:  time.Now(),
		stats:      NewStats(),
	}
}

func (s *Session) Stats() *Stats {
	return s.stats
}
