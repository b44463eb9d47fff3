package useradmin

import (
	"sort"
	"sync"
	"time"
)

const (
	// selectionCookieName stores the browser's selection session ID.
	selectionCookieName = "ua_selection"
	// selectionTTL controls how long idle selections stay valid.
	selectionTTL = 24 * time.Hour
	// selectionCleanupInterval controls how often expired selections are purged.
	selectionCleanupInterval = 30 * time.Minute
)

// SelectionState summarizes how much of the table is selected.
type SelectionState string

const (
	SelectionNone SelectionState = "none"
	SelectionSome SelectionState = "some"
	SelectionAll  SelectionState = "all"
)

// Selection tracks the set of selected user IDs for one browser session.
// A session's selection is shared by every in-flight request carrying its
// cookie, so all access goes through the mutex.
type Selection struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle flips the membership of a single user ID.
func (s *Selection) Toggle(userID string) {
	if s == nil || userID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[userID]; ok {
		delete(s.ids, userID)
		return
	}
	s.ids[userID] = struct{}{}
}

// SelectAll implements the header checkbox: when every given ID is already
// selected the selection is cleared, otherwise all given IDs become selected.
func (s *Selection) SelectAll(userIDs []string) {
	if s == nil || len(userIDs) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all := true
	for _, id := range userIDs {
		if _, ok := s.ids[id]; !ok {
			all = false
			break
		}
	}
	if all {
		s.ids = make(map[string]struct{})
		return
	}
	for _, id := range userIDs {
		if id != "" {
			s.ids[id] = struct{}{}
		}
	}
}

// Contains reports whether a user ID is selected.
func (s *Selection) Contains(userID string) bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[userID]
	return ok
}

// Count returns how many user IDs are selected.
func (s *Selection) Count() int {
	if s == nil {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ids)
}

// IDs returns the selected user IDs in a stable order.
func (s *Selection) IDs() []string {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.ids) == 0 {
		return nil
	}
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// State aggregates the selection against the table's total row count.
func (s *Selection) State(total int) SelectionState {
	count := s.Count()
	if count == 0 || total == 0 {
		return SelectionNone
	}
	if count >= total {
		return SelectionAll
	}
	return SelectionSome
}

// Remove drops a user ID, keeping the selection consistent after deletes.
func (s *Selection) Remove(userID string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, userID)
}

type selectionSession struct {
	selection *Selection
	expiresAt time.Time
}

type selectionStore struct {
	mu          sync.Mutex
	sessions    map[string]selectionSession
	lastCleanup time.Time
}

func newSelectionStore() *selectionStore {
	return &selectionStore{sessions: make(map[string]selectionSession)}
}

func (s *selectionStore) Get(sessionID string) (*Selection, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.cleanupLocked(now)
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	if now.After(session.expiresAt) {
		delete(s.sessions, sessionID)
		return nil, false
	}
	return session.selection, true
}

func (s *selectionStore) Set(sessionID string, selection *Selection) {
	if s == nil || selection == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	s.cleanupLocked(now)
	s.sessions[sessionID] = selectionSession{
		selection: selection,
		expiresAt: now.Add(selectionTTL),
	}
}

func (s *selectionStore) Delete(sessionID string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

func (s *selectionStore) cleanupLocked(now time.Time) {
	if now.Sub(s.lastCleanup) < selectionCleanupInterval {
		return
	}
	for key, session := range s.sessions {
		if now.After(session.expiresAt) {
			delete(s.sessions, key)
		}
	}
	s.lastCleanup = now
}
