package ports

// TranscriptPort receives every byte that crosses the socket in either
// direction, and nothing else. Record never fails the run.
type TranscriptPort interface {
	Record(p []byte)
	Path() string
	Close() error
}
