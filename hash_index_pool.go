package lzw

import "sync"

// hashIndexPool recycles hash index backing arrays between calls. Only memory
// is shared: every acquire resets all slots to empty.
var hashIndexPool = sync.Pool{
	New: func() any {
		return &hashIndex{}
	},
}

// acquireHashIndex acquires an empty hash index with capacity slots from the pool.
func acquireHashIndex(capacity int) *hashIndex {
	h := hashIndexPool.Get().(*hashIndex)
	h.reset(capacity)
	return h
}

// releaseHashIndex releases a hash index to the pool.
func releaseHashIndex(h *hashIndex) {
	if h == nil {
		return
	}

	hashIndexPool.Put(h)
}
