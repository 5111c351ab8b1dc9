// Package pkglog wires the process-wide slog defaults and the run ID helpers.
//
// Every log line carries the service name and, when present in the context,
// the ID of the batch run that produced it.
package pkglog
