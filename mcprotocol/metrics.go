package mcprotocol

import (
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds Prometheus collectors for a Client. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	commands     *prometheus.CounterVec
	decodeErrors *prometheus.CounterVec
	bytesRead    prometheus.Counter
	gridItems    prometheus.Counter
}

// NewMetrics creates the client collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcprotocol",
			Name:      "commands_sent_total",
			Help:      "Commands written to the server, by command name.",
		}, []string{"command"}),
		decodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mcprotocol",
			Name:      "decode_errors_total",
			Help:      "Responses that failed to decode, by error kind.",
		}, []string{"kind"}),
		bytesRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mcprotocol",
			Name:      "bytes_read_total",
			Help:      "Bytes read from the server.",
		}),
		gridItems: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "mcprotocol",
			Name:      "grid_items_total",
			Help:      "Chunk blocks and height values requested from the server.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.commands, m.decodeErrors, m.bytesRead, m.gridItems)
	}
	return m
}

func (m *Metrics) commandSent(name string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(name).Inc()
}

func (m *Metrics) decodeFailed(err error) {
	if m == nil {
		return
	}
	kind := "other"
	var de *DecodeError
	if errors.As(err, &de) {
		kind = de.Kind.String()
	}
	m.decodeErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) gridRequested(n int) {
	if m == nil {
		return
	}
	m.gridItems.Add(float64(n))
}

// countingReader adds the bytes read through it to the bytes_read_total
// counter.
type countingReader struct {
	r io.Reader
	m *Metrics
}

func (cr countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	if n > 0 && cr.m != nil {
		cr.m.bytesRead.Add(float64(n))
	}
	return n, err
}
