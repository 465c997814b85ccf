// Package broadcast provides pairing.Sink implementations.
//
//   - Zerolog forwards events to a zerolog.Logger: pair events at info
//     level, progress events at debug level.
//   - Multi fans one event out to several sinks.
//   - Recorder keeps events in memory, mainly for tests.
//
// Every sink here is safe for concurrent use and may be passed to a
// parallel run.
package broadcast
