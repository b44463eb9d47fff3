// Package storage defines persistence contracts for operator audit records.
//
// Handlers use these interfaces so screen logic stays testable and never
// depends on a concrete SQLite schema.
package storage
