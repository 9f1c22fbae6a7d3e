package transport

import (
	applog "github.com/nikhiloz/generic/internal/log"
)

// LoggingTransport implements the Transport interface by writing
// events to the debug log. It is the sink of last resort: attaching
// it never fails and sending through it never fails.
type LoggingTransport struct{}

// NewLoggingTransport creates a new LoggingTransport instance.
func NewLoggingTransport() *LoggingTransport {
	applog.Debug("Transport: Using LoggingTransport")
	return &LoggingTransport{}
}

// Send logs the received event at debug level.
func (lt *LoggingTransport) Send(data any) error {
	applog.Debugf("LOG_TRANSPORT: Received (%T): %+v", data, data)
	return nil // Logging transport never fails to "send"
}

// Close is a no-op for LoggingTransport.
func (lt *LoggingTransport) Close() error {
	applog.Debug("LOG_TRANSPORT: Close called.")
	return nil
}

// Ensure LoggingTransport satisfies the interface at compile time.
var _ Transport = (*LoggingTransport)(nil)
