package synth

import (
	"ircfuzz/internal/app/domain/randx"
	"strings"
)

// Per-line probabilities of the structured generation steps. Every line
// draws each of them independently.
const (
	SingleTargetBias  = 0.5
	TrailingParamProb = 0.3
	PrefixProb        = 0.05
	CorruptionProb    = 0.075

	MaxTargets = 15
)

// Commands is the closed command vocabulary. No semantics are attached to
// any of them, the server is expected to cope with whatever follows.
var Commands = []string{"NICK", "USER", "JOIN", "PART", "PRIVMSG", "NOTICE"}

var trailingShape = randx.Shape{{randx.Upper, 8}, {randx.Lower, 9}, {randx.Any, 1}, {randx.Lower, 4}, {randx.Digit, 1}}

// Params lets tests pin individual branches; DefaultParams mirrors the
// constants above.
type Params struct {
	SingleTargetBias  float64
	TrailingParamProb float64
	PrefixProb        float64
	CorruptionProb    float64
	MaxTargets        int
}

func DefaultParams() Params {
	return Params{
		SingleTargetBias:  SingleTargetBias,
		TrailingParamProb: TrailingParamProb,
		PrefixProb:        PrefixProb,
		CorruptionProb:    CorruptionProb,
		MaxTargets:        MaxTargets,
	}
}

// Message is one synthesized protocol line. Raw carries the wire form
// including the terminator; the remaining fields describe the structure
// before any corruption.
type Message struct {
	Prefix    string
	Command   string
	Targets   []string
	Trailing  string
	Corrupted bool
	Raw       string
}

type Synthesizer struct {
	rng    *randx.Rand
	pool   []string
	params Params
}

// New builds a synthesizer over the combined identifier pool. The pool is
// never mutated.
func New(rng *randx.Rand, pool []string, params Params) *Synthesizer {
	return &Synthesizer{
		rng:    rng,
		pool:   pool,
		params: params,
	}
}

// Next produces one message. Calls are independent; nothing carries over
// between lines.
func (s *Synthesizer) Next() *Message {
	m := &Message{
		Command: Commands[s.rng.Intn(len(Commands))],
	}

	n := 1 + s.rng.Intn(s.params.MaxTargets)
	if s.rng.Chance(s.params.SingleTargetBias) {
		n = 1
	}

	m.Targets = make([]string, n)
	for i := range m.Targets {
		m.Targets[i] = s.pool[s.rng.Intn(len(s.pool))]
	}

	line := m.Command + " " + strings.Join(m.Targets, ",")

	if s.rng.Chance(s.params.TrailingParamProb) {
		m.Trailing = s.rng.Pattern(trailingShape)
		line += " :" + m.Trailing
	}

	if s.rng.Chance(s.params.PrefixProb) {
		m.Prefix = s.genPrefix()
		line = ":" + m.Prefix + " " + line
	}

	if s.rng.Chance(s.params.CorruptionProb) {
		m.Corrupted = true
		line = s.shuffle(line)
	}

	m.Raw = line + "\r\n"
	return m
}

// genPrefix joins three independent alphabetic draws as nick!user@host.
// Any of the parts may come out empty.
func (s *Synthesizer) genPrefix() string {
	return s.rng.Alpha(s.rng.Intn(8)) + "!" + s.rng.Alpha(s.rng.Intn(8)) + "@" + s.rng.Alpha(s.rng.Intn(16))
}

// shuffle permutes the characters of the whole line, terminator excluded.
func (s *Synthesizer) shuffle(line string) string {
	chars := []rune(line)
	s.rng.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})

	return string(chars)
}
