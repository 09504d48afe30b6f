// Package mem holds the process-wide allocator hook registry. Every
// buffer the parse and encode packages allocate or release goes
// through the current hook pair, so a pair installed before any trees
// are built observes all of the library's transient and output buffer
// traffic. The registry exists for memory accounting in constrained
// environments; the Go runtime still owns node memory itself.
//
// Replacing hooks is unsynchronized global state. Install a pair once
// at startup, before any concurrent use, and do not swap pairs while
// buffers obtained from the previous pair are still live.
package mem

// Hooks is a swappable allocate/free pair. Alloc returns a zeroed
// buffer of at least n bytes, or nil when storage is unavailable.
type Hooks struct {
	Alloc func(n int) []byte
	Free  func(buf []byte)
}

func defaultAlloc(n int) []byte { return make([]byte, n) }
func defaultFree([]byte)        {}

var (
	allocFn = defaultAlloc
	freeFn  = defaultFree
)

// Set installs h as the current hook pair. Set(nil) resets both hooks
// to the runtime defaults; a nil member of a non-nil pair falls back
// to the default for that member only.
func Set(h *Hooks) {
	if h == nil {
		allocFn = defaultAlloc
		freeFn = defaultFree
		return
	}
	allocFn = h.Alloc
	if allocFn == nil {
		allocFn = defaultAlloc
	}
	freeFn = h.Free
	if freeFn == nil {
		freeFn = defaultFree
	}
}

// Alloc obtains a buffer from the current hooks. A nil result means
// the allocator declined and the caller must unwind.
func Alloc(n int) []byte { return allocFn(n) }

// Free returns a buffer to the current hooks.
func Free(buf []byte) { freeFn(buf) }
