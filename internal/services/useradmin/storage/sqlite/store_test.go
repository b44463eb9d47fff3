package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/userhub-admin/internal/services/useradmin/storage"
)

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestPutAuditEntryStoresRecord(t *testing.T) {
	store := openTempStore(t)

	createdAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	err := store.PutAuditEntry(context.Background(), storage.AuditEntry{
		ID:        "audit-1",
		ActorID:   "op-1",
		Action:    storage.AuditActionUserUpdated,
		UserID:    "user-1",
		Detail:    "role changed to admin",
		CreatedAt: createdAt,
	})
	if err != nil {
		t.Fatalf("put audit entry: %v", err)
	}

	var storedAction string
	var storedAt string
	row := store.sqlDB.QueryRow("SELECT action, created_at FROM audit_log WHERE id = ?", "audit-1")
	if err := row.Scan(&storedAction, &storedAt); err != nil {
		t.Fatalf("scan audit entry: %v", err)
	}
	if storedAction != storage.AuditActionUserUpdated {
		t.Fatalf("expected action %s, got %s", storage.AuditActionUserUpdated, storedAction)
	}
	if storedAt != createdAt.Format(timeFormat) {
		t.Fatalf("expected created_at %s, got %s", createdAt.Format(timeFormat), storedAt)
	}
}

func TestPutAuditEntryDefaultsIDAndTime(t *testing.T) {
	store := openTempStore(t)

	err := store.PutAuditEntry(context.Background(), storage.AuditEntry{
		ActorID: "op-1",
		Action:  storage.AuditActionUserCreated,
		UserID:  "user-2",
	})
	if err != nil {
		t.Fatalf("put audit entry: %v", err)
	}

	entries, err := store.ListAuditEntries(context.Background(), "user-2", 10)
	if err != nil {
		t.Fatalf("list audit entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].ID == "" {
		t.Fatal("expected generated entry id")
	}
	if entries[0].CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}

func TestPutAuditEntryValidation(t *testing.T) {
	store := openTempStore(t)

	err := store.PutAuditEntry(context.Background(), storage.AuditEntry{UserID: "user-1"})
	if err == nil {
		t.Fatal("expected error for missing action")
	}

	err = store.PutAuditEntry(context.Background(), storage.AuditEntry{Action: storage.AuditActionUserDeleted})
	if err == nil {
		t.Fatal("expected error for missing user id")
	}
}

func TestListAuditEntriesNewestFirst(t *testing.T) {
	store := openTempStore(t)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, action := range []string{storage.AuditActionUserCreated, storage.AuditActionUserUpdated, storage.AuditActionPasswordReset} {
		err := store.PutAuditEntry(context.Background(), storage.AuditEntry{
			ActorID:   "op-1",
			Action:    action,
			UserID:    "user-3",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("put audit entry %d: %v", i, err)
		}
	}

	entries, err := store.ListAuditEntries(context.Background(), "user-3", 2)
	if err != nil {
		t.Fatalf("list audit entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Action != storage.AuditActionPasswordReset {
		t.Fatalf("expected newest entry first, got %s", entries[0].Action)
	}
	if entries[1].Action != storage.AuditActionUserUpdated {
		t.Fatalf("expected second newest entry, got %s", entries[1].Action)
	}
}

func TestListAuditEntriesScopedToUser(t *testing.T) {
	store := openTempStore(t)

	err := store.PutAuditEntry(context.Background(), storage.AuditEntry{
		ActorID: "op-1",
		Action:  storage.AuditActionUserCreated,
		UserID:  "user-a",
	})
	if err != nil {
		t.Fatalf("put audit entry: %v", err)
	}

	entries, err := store.ListAuditEntries(context.Background(), "user-b", 10)
	if err != nil {
		t.Fatalf("list audit entries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries for other user, got %d", len(entries))
	}
}

func TestStoreRequiresConfiguration(t *testing.T) {
	var store *Store
	err := store.PutAuditEntry(context.Background(), storage.AuditEntry{
		Action: storage.AuditActionUserCreated,
		UserID: "user-1",
	})
	if err == nil {
		t.Fatal("expected error for nil store")
	}
	if _, err := store.ListAuditEntries(context.Background(), "user-1", 10); err == nil {
		t.Fatal("expected error for nil store")
	}
}

func openTempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "useradmin.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil && err != sql.ErrConnDone {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}
