package ports

import "time"

type Directive struct {
	Line string    `json:"line"`
	At   time.Time `json:"at"`
}

// DirectivesPort keeps the recently matched server lines for the status
// API; entries age out on their own.
type DirectivesPort interface {
	Add(line string)
	Recent() []Directive
}
