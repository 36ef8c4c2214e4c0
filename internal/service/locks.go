package service

import (
	"sync"

	"github.com/google/uuid"
)

// userLocks serializes check-in creation per subject user, closing the
// query-then-act race on the "one active check-in" invariant.
type userLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{locks: make(map[uuid.UUID]*userLock)}
}

// Lock acquires the per-user lock and returns its unlock function.
// Entries are reference-counted so the map does not grow with every
// user ever seen.
func (l *userLocks) Lock(userID uuid.UUID) func() {
	l.mu.Lock()
	entry, ok := l.locks[userID]
	if !ok {
		entry = &userLock{}
		l.locks[userID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}
}
