package application

import "sync"

// keyedMutex provides a mutual-exclusion scope per key. Booking creation
// holds the bookable's lock across the conflict re-check and the insert so
// two concurrent requests cannot both pass validation.
//
// Entries are never removed; the key space is the bookable catalog, which is
// small and fixed.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for key and returns the matching unlock function.
func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
