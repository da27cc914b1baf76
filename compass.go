// Package compass provides a terminal client for searching a corpus of
// conversational cases and requesting a synthesized coach response derived
// from the cases a user selects.
//
// This package contains domain types, interfaces and the Session state
// orchestrator. Implementations live in subdirectories named after their
// primary dependency (e.g., http/, slog/, glamour/, bubbletea/).
package compass
