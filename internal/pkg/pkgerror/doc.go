// Package pkgerror defines shared error types and sentinel errors used across
// the application.
//
// It helps keep error handling consistent by:
//   - Providing sentinel errors that can be checked with errors.Is.
//   - Providing a structured Error type that carries a message, type, and code,
//     so callers can react to failure classes (not found, malformed source,
//     invalid input) without parsing error strings.
package pkgerror
