package argon2

import "sync"

// Allocator supplies and reclaims the working memory buffer a hash call
// needs. Deallocate is always called exactly once per successful
// Allocate, on every exit path (success, validation failure after
// allocation, or worker failure).
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Deallocate(buf []byte)
}

// poolAllocator buckets reclaimed buffers by exact size in a family of
// sync.Pools, one per distinct size seen. It generalizes the teacher's
// single fixed-size scratchpad pool (memory.go's vmPool/scratchpadPool)
// to the arbitrary memory costs a Context can request.
type poolAllocator struct {
	mu    sync.RWMutex
	pools map[int]*sync.Pool
}

// NewPoolAllocator returns an Allocator that reuses same-size buffers
// across hash calls instead of returning them to the garbage collector.
// It is the package default when Context.Allocator is nil.
func NewPoolAllocator() Allocator {
	return &poolAllocator{pools: make(map[int]*sync.Pool)}
}

func (a *poolAllocator) poolFor(n int) *sync.Pool {
	a.mu.RLock()
	p, ok := a.pools[n]
	a.mu.RUnlock()
	if ok {
		return p
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if p, ok := a.pools[n]; ok {
		return p
	}
	p = &sync.Pool{New: func() interface{} { return make([]byte, n) }}
	a.pools[n] = p
	return p
}

func (a *poolAllocator) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, nil
	}
	buf := a.poolFor(n).Get().([]byte)
	for i := range buf {
		buf[i] = 0
	}
	return buf, nil
}

func (a *poolAllocator) Deallocate(buf []byte) {
	if len(buf) == 0 {
		return
	}
	for i := range buf {
		buf[i] = 0
	}
	a.poolFor(len(buf)).Put(buf) //nolint:staticcheck // size-keyed by construction
}

var defaultAllocator = NewPoolAllocator()
