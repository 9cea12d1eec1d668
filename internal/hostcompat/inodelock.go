package hostcompat

import "sync"

// inodeKey identifies an inode across filesystems.
type inodeKey struct {
	dev uint64
	ino uint64
}

type inodeLockEntry struct {
	mu   sync.Mutex
	refs int
}

// inodeLockRegistry hands out one mutex per inode identity. Entries are
// reference counted and removed when the last holder releases, so the
// registry stays bounded by the number of concurrently locked inodes.
type inodeLockRegistry struct {
	mu    sync.Mutex
	locks map[inodeKey]*inodeLockEntry
}

var inodeLocks = &inodeLockRegistry{locks: make(map[inodeKey]*inodeLockEntry)}

func (r *inodeLockRegistry) acquire(key inodeKey) *inodeLockEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.locks[key]
	if !ok {
		e = &inodeLockEntry{}
		r.locks[key] = e
	}
	e.refs++
	return e
}

func (r *inodeLockRegistry) release(key inodeKey) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.locks[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(r.locks, key)
	}
}

// InodeLockScope enters a critical section keyed by inode identity and
// returns the function that leaves it. The returned function is idempotent,
// so it is safe to both defer it and call it early on some paths; every exit
// path must run it before returning.
func InodeLockScope(dev, ino uint64) func() {
	key := inodeKey{dev: dev, ino: ino}
	e := inodeLocks.acquire(key)
	e.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Unlock()
			inodeLocks.release(key)
		})
	}
}
