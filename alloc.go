package arena

import (
	"math"
	"unsafe"
)

// The typed helpers below place values in block storage, which the garbage
// collector does not scan. T must not hold the only reference to memory
// outside the arena; pointers to arena-owned data (for example strings from
// DupString) are fine because the arena keeps those blocks alive. Types
// with pointer fields must come from the zeroing variants so stale words
// are never seen by the write barrier.

// Alloc returns a pointer to a zeroed T stored inside the arena.
// The pointer is valid until the next Reset or Free.
func Alloc[T any](a *Arena) *T {
	var zero T
	b := a.AllocBytesZeroed(int(unsafe.Sizeof(zero)))
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocZeroed is identical to Alloc - provided for API consistency.
func AllocZeroed[T any](a *Arena) *T {
	return Alloc[T](a)
}

// AllocUninitialized returns a *T located in the arena without zeroing memory.
// This is faster than Alloc but the memory contents are undefined.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	b := a.AllocBytes(int(unsafe.Sizeof(zero)))
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized. Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	b := a.AllocBytes(sliceBytes[T](n))
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// AllocSliceZeroed allocates a slice of n zeroed elements of type T.
// Returns nil if n <= 0.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	b := a.AllocBytesZeroed(sliceBytes[T](n))
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// sliceBytes returns the byte size of n elements of T.
func sliceBytes[T any](n int) int {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size > 0 && n > math.MaxInt/size {
		panic("arena: slice size overflows int")
	}
	return size * n
}
