package driver

import "time"

// PassInfo describes one completed sweep pass.
// Passed to PassCallback after the pass's final re-assertion send, before the
// inter-pass pause.
type PassInfo struct {
	// Pass is the 1-based pass number
	Pass int

	// Steps is the number of feedback words sent this pass
	// (table length + 1 for the first-step re-assertion)
	Steps int

	// Elapsed is the time since the sweep entered steady state
	Elapsed time.Duration
}

// PassCallback is called once per sweep pass. Implementations should return
// quickly; the callback runs on the timing-critical control loop.
type PassCallback func(PassInfo)

// Logger is an optional logging interface that can be provided to the
// sweeper. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	sw := driver.New(bus, table, driver.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
