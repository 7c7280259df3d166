package usecase

import "sync"

// keyedLocks serializes state transitions per ref_id. Transitions for
// different transactions proceed fully concurrently; overlapping triggers for
// the same one (payment timer, kafka event, callback, fallback settlement)
// queue behind each other.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

type refLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]*refLock)}
}

func (kl *keyedLocks) Lock(key string) (unlock func()) {
	kl.mu.Lock()
	l, ok := kl.locks[key]
	if !ok {
		l = &refLock{}
		kl.locks[key] = l
	}
	l.refs++
	kl.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		kl.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(kl.locks, key)
		}
		kl.mu.Unlock()
	}
}
