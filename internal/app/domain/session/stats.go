package session

import (
	"sync"
	"time"
)

// Stats accumulates the run counters. The fuzz loop is the only writer,
// but the status API reads from its own goroutine, so access is guarded.
type Stats struct {
	mu sync.Mutex

	iterations    int64
	sent          int64
	sentBytes     int64
	receivedBytes int64
	corrupted     int64
	dropped       int64
	directives    int64
}

type Snapshot struct {
	Iterations    int64     `json:"iterations"`
	Sent          int64     `json:"sent"`
	SentBytes     int64     `json:"sent_bytes"`
	ReceivedBytes int64     `json:"received_bytes"`
	Corrupted     int64     `json:"corrupted"`
	Dropped       int64     `json:"dropped"`
	Directives    int64     `json:"directives"`
	TakenAt       time.Time `json:"taken_at"`
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) AddIteration() {
	s.mu.Lock()
	s.iterations++
	s.mu.Unlock()
}

func (s *Stats) AddSent(n int) {
	s.mu.Lock()
	s.sent++
	s.sentBytes += int64(n)
	s.mu.Unlock()
}

func (s *Stats) AddReceived(n int) {
	s.mu.Lock()
	s.receivedBytes += int64(n)
	s.mu.Unlock()
}

func (s *Stats) AddCorrupted() {
	s.mu.Lock()
	s.corrupted++
	s.mu.Unlock()
}

func (s *Stats) AddDropped() {
	s.mu.Lock()
	s.dropped++
	s.mu.Unlock()
}

func (s *Stats) AddDirective() {
	s.mu.Lock()
	s.directives++
	s.mu.Unlock()
}

func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Iterations:    s.iterations,
		Sent:          s.sent,
		SentBytes:     s.sentBytes,
		ReceivedBytes: s.receivedBytes,
		Corrupted:     s.corrupted,
		Dropped:       s.dropped,
		Directives:    s.directives,
		TakenAt:       time.Now(),
	}
}
