// Package transport carries demo trace events to external sinks: a
// logging fallback, a WebSocket broadcast server and a UDP snapshot
// publisher for counter runs.
package transport

// Transport defines a generic interface for sending processed data or
// events. Implementations should be thread-safe.
type Transport interface {
	Send(data any) error
	Close() error
}

// TraceEvent is one demo step as it went to the output writer. Seq is
// assigned per run and increases monotonically across demos.
type TraceEvent struct {
	Seq       uint32 `json:"seq"`
	Demo      string `json:"demo"`
	Label     string `json:"label"`
	Value     string `json:"value"`
	Timestamp int64  `json:"timestamp"` // Nanoseconds since epoch
}
