// Package memory provides an in-process directory backend.
//
// It backs local development and tests, and doubles as the reference for the
// ordering semantics the admin table expects: single-key, stable, with
// locale-aware string comparison.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.einride.tech/aip/ordering"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/louisbranch/userhub-admin/internal/platform/id"
	"github.com/louisbranch/userhub-admin/internal/services/useradmin/directory"
)

// Directory is a mutex-guarded in-memory user store.
type Directory struct {
	mu     sync.RWMutex
	users  map[string]directory.User
	order  []string
	locale language.Tag
	now    func() time.Time
}

// NewDirectory returns an empty in-memory directory.
func NewDirectory() *Directory {
	return &Directory{
		users:  make(map[string]directory.User),
		locale: language.English,
		now:    time.Now,
	}
}

// Seed inserts users preserving their provided fields. Records without an ID
// are assigned one. Seed is intended for fixtures and development data.
func (d *Directory) Seed(users []directory.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, user := range users {
		if strings.TrimSpace(user.ID) == "" {
			newID, err := id.NewID()
			if err != nil {
				return err
			}
			user.ID = newID
		}
		if user.CreatedAt.IsZero() {
			user.CreatedAt = d.now().UTC()
		}
		if user.UpdatedAt.IsZero() {
			user.UpdatedAt = user.CreatedAt
		}
		if _, ok := d.users[user.ID]; !ok {
			d.order = append(d.order, user.ID)
		}
		d.users[user.ID] = user
	}
	return nil
}

// ListUsers returns all users ordered by query.OrderBy.
//
// The sort is stable over insertion order. An invalid or unknown order_by
// clause is reported as an error so the caller can fall back explicitly.
func (d *Directory) ListUsers(ctx context.Context, query directory.ListQuery) ([]directory.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	d.mu.RLock()
	users := make([]directory.User, 0, len(d.order))
	for _, userID := range d.order {
		users = append(users, d.users[userID])
	}
	d.mu.RUnlock()

	clause := strings.TrimSpace(query.OrderBy)
	if clause == "" {
		return users, nil
	}

	field, desc, err := parseOrderBy(clause)
	if err != nil {
		return nil, err
	}

	less := d.lessFunc(field)
	sort.SliceStable(users, func(i, j int) bool {
		if desc {
			return less(users[j], users[i])
		}
		return less(users[i], users[j])
	})
	return users, nil
}

// GetUser returns one user or directory.ErrNotFound.
func (d *Directory) GetUser(ctx context.Context, userID string) (directory.User, error) {
	if err := ctx.Err(); err != nil {
		return directory.User{}, err
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	user, ok := d.users[userID]
	if !ok {
		return directory.User{}, directory.ErrNotFound
	}
	return user, nil
}

// CreateUser stores a new user, assigning ID and timestamps.
func (d *Directory) CreateUser(ctx context.Context, user directory.User) (directory.User, error) {
	if err := ctx.Err(); err != nil {
		return directory.User{}, err
	}
	newID, err := id.NewID()
	if err != nil {
		return directory.User{}, err
	}
	user.ID = newID
	now := d.now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	d.mu.Lock()
	defer d.mu.Unlock()
	d.users[user.ID] = user
	d.order = append(d.order, user.ID)
	return user, nil
}

// UpdateUser applies non-nil update fields and bumps UpdatedAt.
func (d *Directory) UpdateUser(ctx context.Context, userID string, update directory.Update) (directory.User, error) {
	if err := ctx.Err(); err != nil {
		return directory.User{}, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	user, ok := d.users[userID]
	if !ok {
		return directory.User{}, directory.ErrNotFound
	}
	if update.Email != nil {
		user.Email = *update.Email
	}
	if update.DisplayName != nil {
		user.DisplayName = *update.DisplayName
	}
	if update.Role != nil {
		user.Role = *update.Role
	}
	user.UpdatedAt = d.now().UTC()
	d.users[userID] = user
	return user, nil
}

// DeleteUser removes the user or returns directory.ErrNotFound.
func (d *Directory) DeleteUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.users[userID]; !ok {
		return directory.ErrNotFound
	}
	delete(d.users, userID)
	for i, existing := range d.order {
		if existing == userID {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	return nil
}

// ResetPassword returns a fresh one-time secret for the user.
func (d *Directory) ResetPassword(ctx context.Context, userID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	user, ok := d.users[userID]
	if !ok {
		return "", directory.ErrNotFound
	}
	secret, err := id.NewID()
	if err != nil {
		return "", err
	}
	user.UpdatedAt = d.now().UTC()
	d.users[userID] = user
	return secret, nil
}

// parseOrderBy extracts the single (field, direction) pair of an AIP-132
// order_by clause.
func parseOrderBy(clause string) (string, bool, error) {
	var orderBy ordering.OrderBy
	if err := orderBy.UnmarshalString(clause); err != nil {
		return "", false, err
	}
	if err := orderBy.ValidateForPaths("id", "email", "display_name", "role", "created_at", "updated_at"); err != nil {
		return "", false, err
	}
	if len(orderBy.Fields) != 1 {
		return "", false, fmt.Errorf("order_by must name exactly one field, got %d", len(orderBy.Fields))
	}
	return orderBy.Fields[0].Path, orderBy.Fields[0].Desc, nil
}

func (d *Directory) lessFunc(field string) func(a, b directory.User) bool {
	// collate.Collator keeps iterator state across calls, so every sort gets
	// its own instance rather than sharing one between requests.
	collator := collate.New(d.locale)
	compare := func(a, b string) bool {
		return collator.CompareString(a, b) < 0
	}
	switch field {
	case "email":
		return func(a, b directory.User) bool { return compare(a.Email, b.Email) }
	case "display_name":
		return func(a, b directory.User) bool { return compare(a.DisplayName, b.DisplayName) }
	case "role":
		return func(a, b directory.User) bool { return compare(a.Role, b.Role) }
	case "created_at":
		return func(a, b directory.User) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updated_at":
		return func(a, b directory.User) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return func(a, b directory.User) bool { return compare(a.ID, b.ID) }
	}
}

var _ directory.Directory = (*Directory)(nil)
