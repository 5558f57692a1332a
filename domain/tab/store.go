package tab

import (
	"errors"
	"fmt"
	"sync"

	"ocrdesk/core/apperror"
	"ocrdesk/core/state"
)

// Common errors for tab operations.
var (
	ErrTabNotFound     = errors.New("tab not found")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidFontHint = errors.New("invalid font hint")
)

// Store is the ordered collection of open tabs.
// It always holds at least one tab and exactly one of them is active.
// The "+" control of the tab bar is not represented here.
type Store struct {
	tabs     []*Tab
	activeID int
	nextID   int
	mu       sync.RWMutex
}

// NewStore creates a store holding one default tab.
func NewStore() *Store {
	s := &Store{}
	s.CreateTab()
	return s
}

// CreateTab appends a tab with default settings and makes it active.
func (s *Store) CreateTab() *Tab {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := New(s.nextID)
	s.nextID++
	s.tabs = append(s.tabs, t)
	s.activeID = t.ID
	return t.Clone()
}

// CloseTab removes a tab. Closing the last remaining tab is a no-op and
// reports false. If the closed tab was active, the tab that slides into its
// position becomes active, or the previous one if it was the last.
func (s *Store) CloseTab(id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false, notFound("close tab", id)
	}
	if len(s.tabs) <= 1 {
		return false, nil
	}

	s.tabs = append(s.tabs[:idx], s.tabs[idx+1:]...)

	if s.activeID == id {
		if idx >= len(s.tabs) {
			idx = len(s.tabs) - 1
		}
		s.activeID = s.tabs[idx].ID
	}
	return true, nil
}

// SetActive makes a tab active. Unknown ids are ignored and report false.
func (s *Store) SetActive(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(id) < 0 {
		return false
	}
	s.activeID = id
	return true
}

// Get returns a copy of the tab with the given id. Changes go through Update.
func (s *Store) Get(id int) (*Tab, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, notFound("get tab", id)
	}
	return s.tabs[idx].Clone(), nil
}

// Update applies fn to a tab while holding the store lock.
func (s *Store) Update(id int, fn func(t *Tab)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return notFound("update tab", id)
	}
	fn(s.tabs[idx])
	return nil
}

// Active returns a copy of the active tab.
func (s *Store) Active() *Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tabs[s.indexOf(s.activeID)].Clone()
}

// ActiveID returns the id of the active tab.
func (s *Store) ActiveID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// List returns copies of the tabs in tab-bar order.
func (s *Store) List() []*Tab {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tabs := make([]*Tab, len(s.tabs))
	for i, t := range s.tabs {
		tabs[i] = t.Clone()
	}
	return tabs
}

// Len returns the number of open tabs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tabs)
}

// IndexOf returns the position of a tab in tab-bar order, or -1.
func (s *Store) IndexOf(id int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(id)
}

// Enablement recomputes the toolbar flags from the current tabs.
func (s *Store) Enablement() state.Enablement {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]state.TabSnapshot, len(s.tabs))
	var active state.TabSnapshot
	for i, t := range s.tabs {
		all[i] = t.Snapshot()
		if t.ID == s.activeID {
			active = all[i]
		}
	}
	return state.Derive(active, all)
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func notFound(op string, id int) error {
	return apperror.State(op, fmt.Errorf("%w: %d", ErrTabNotFound, id))
}
