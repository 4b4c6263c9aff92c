package arena

import "sync"

// SafeArena serializes every operation on an Arena behind a mutex.
// Arena itself stays lock-free; wrap it only when an arena must be shared.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafeArena creates a new thread-safe arena with the specified block unit.
// If blockSize <= 0, DefaultBlockSize is used.
func NewSafeArena(blockSize int) *SafeArena {
	return &SafeArena{a: NewArena(blockSize)}
}

// AllocBytes thread-safely allocates n bytes and returns a slice pointing to them.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// AllocBytesZeroed thread-safely allocates n zeroed bytes.
func (s *SafeArena) AllocBytesZeroed(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytesZeroed(n)
}

// Realloc thread-safely grows b to newSize bytes.
func (s *SafeArena) Realloc(b []byte, newSize int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Realloc(b, newSize)
}

// Strdup thread-safely copies s into the arena with a NUL terminator.
func (s *SafeArena) Strdup(str string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Strdup(str)
}

// DupString thread-safely copies str into the arena.
func (s *SafeArena) DupString(str string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.DupString(str)
}

// EnsureCapacity thread-safely ensures n free bytes are available.
func (s *SafeArena) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Reset thread-safely resets block usage for arena reuse.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Free thread-safely releases all blocks.
func (s *SafeArena) Free() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Free()
}

// Generic allocation functions for SafeArena

// SafeAlloc thread-safely returns a pointer to a zeroed T stored inside the arena.
func SafeAlloc[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocZeroed is identical to SafeAlloc - provided for API consistency.
func SafeAllocZeroed[T any](s *SafeArena) *T {
	return SafeAlloc[T](s)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing memory.
func SafeAllocUninitialized[T any](s *SafeArena) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a slice of n elements with zeroed memory.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}
