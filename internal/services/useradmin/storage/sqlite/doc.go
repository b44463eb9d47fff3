// Package sqlite provides SQLite-backed persistence for operator audit records.
//
// It stores administrative audit state only. Managed user records live behind
// the directory seam so the audit trail cannot drift into a shadow directory.
package sqlite
