package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Iterations - сколько итераций цикла прошло за запуск.
	Iterations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuzzer_iterations_total",
		Help: "Total number of fuzz loop iterations",
	})

	// MessagesSent - количество полностью принятых строк.
	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuzzer_messages_sent_total",
		Help: "Total number of fully accepted lines",
	})

	// BytesSent - байты, принятые транспортом.
	BytesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuzzer_bytes_sent_total",
		Help: "Total bytes accepted by the transport",
	})

	// BytesReceived - байты, принятые от сервера.
	BytesReceived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuzzer_bytes_received_total",
		Help: "Total bytes drained from the target",
	})

	// CorruptedMessages - строки, прошедшие через шаффл.
	CorruptedMessages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuzzer_corrupted_messages_total",
		Help: "Total lines that went through the corruption step",
	})

	// DroppedSends - строки, принятые не полностью и не записанные.
	DroppedSends = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuzzer_dropped_sends_total",
		Help: "Total lines dropped after a short transport accept",
	})

	// ServerDirectives - входящие строки, совпавшие с эвристикой.
	ServerDirectives = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuzzer_server_directives_total",
		Help: "Total inbound lines matching the directive heuristic",
	})

	// PacingSeed - зафиксированный на запуск pacing seed.
	PacingSeed = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fuzzer_pacing_seed",
		Help: "Pacing seed fixed for this run",
	})

	// SelfTerminations - сработал ли вероятностный выход.
	SelfTerminations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fuzzer_self_terminations_total",
		Help: "Probabilistic clean-exit draws that fired",
	})
)
