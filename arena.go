package arena

import (
	"math"
	"unsafe"
)

// DefaultBlockSize is the default block unit for new arenas (8 KiB).
// Every block capacity is a power-of-two multiple of the unit.
const DefaultBlockSize = 8 * 1024

// wordSize is the alignment of every allocation and of every block base.
const wordSize = int(unsafe.Sizeof(uintptr(0)))

// block is one backing buffer in an arena's chain.
type block struct {
	data     []uintptr // word-typed so the base is always word-aligned
	usage    int       // bytes handed out from data
	capacity int       // len(data) in bytes, fixed at creation
}

// newBlock returns a block whose capacity is the smallest power-of-two
// multiple of unit that holds size bytes. Failure to allocate the storage
// is fatal to the process.
func newBlock(unit, size int) *block {
	capacity := unit
	for size > capacity {
		if capacity > math.MaxInt/2 {
			panic("arena: block size overflows int")
		}
		capacity *= 2
	}
	return &block{
		data:     make([]uintptr, capacity/wordSize),
		capacity: capacity,
	}
}

// bytes returns the block storage viewed as bytes.
func (b *block) bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(b.data))), b.capacity)
}

func (b *block) fits(n int) bool {
	return b.usage+n <= b.capacity
}

// release drops the block's storage. No-op on nil.
func (b *block) release() {
	if b == nil {
		return
	}
	b.data = nil
	b.usage = 0
	b.capacity = 0
}

// Arena is a region allocator backed by a growing chain of blocks.
// Memory is handed out in word-aligned pieces and reclaimed all at once by
// Reset or Free. Arena is not goroutine-safe; use SafeArena for shared use.
//
// The zero value is an empty arena using DefaultBlockSize.
type Arena struct {
	blocks    []*block // chain in creation order; blocks[0] is the start
	end       int      // index of the block accepting allocations
	blockSize int
}

// NewArena creates an empty Arena with the given block unit.
// If blockSize <= 0, DefaultBlockSize is used. No memory is reserved until
// the first allocation.
func NewArena(blockSize int) *Arena {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}
	return &Arena{blockSize: alignSize(blockSize)}
}

func (a *Arena) unit() int {
	if a.blockSize <= 0 {
		return DefaultBlockSize
	}
	return a.blockSize
}

// AllocBytes returns n bytes of arena memory. The contents are unspecified.
// The slice has len and cap n and is word-aligned; it stays valid until the
// next Reset or Free. Returns nil if n < 0.
//
// A zero-byte request returns an empty, non-nil slice and never grows the
// chain.
func (a *Arena) AllocBytes(n int) []byte {
	if n < 0 {
		return nil
	}
	if n == 0 {
		if len(a.blocks) == 0 {
			return []byte{}
		}
		c := a.blocks[a.end]
		return c.bytes()[c.usage:c.usage:c.usage]
	}

	size := alignSize(n)
	c := a.current(size)
	start := c.usage
	c.usage += size
	return c.bytes()[start : start+n : start+n]
}

// AllocBytesZeroed is AllocBytes with the returned bytes set to zero.
func (a *Arena) AllocBytesZeroed(n int) []byte {
	b := a.AllocBytes(n)
	clear(b)
	return b
}

// current returns the block that will serve an aligned request of size
// bytes, advancing end through the chain and appending a new tail block if
// nothing already allocated has room.
func (a *Arena) current(size int) *block {
	if len(a.blocks) == 0 {
		a.blocks = append(a.blocks, newBlock(a.unit(), size))
		a.end = 0
		return a.blocks[0]
	}

	for !a.blocks[a.end].fits(size) && a.end+1 < len(a.blocks) {
		a.end++
	}

	c := a.blocks[a.end]
	if !c.fits(size) {
		c = newBlock(a.unit(), size)
		a.blocks = append(a.blocks, c)
		a.end = len(a.blocks) - 1
	}
	return c
}

// Realloc grows b to newSize bytes. If newSize <= len(b), b is returned
// unchanged and nothing is cleared. Otherwise a new region is allocated, the
// len(b) bytes of b are copied to its front and the rest is zeroed. The old
// region is not reclaimed until Reset or Free.
//
// b must have been obtained from this arena.
func (a *Arena) Realloc(b []byte, newSize int) []byte {
	if newSize <= len(b) {
		return b
	}
	nb := a.AllocBytes(newSize)
	n := copy(nb, b)
	clear(nb[n:])
	return nb
}

// Strdup copies s into the arena followed by a NUL terminator and returns
// the len(s)+1 copied bytes. s need not be arena-owned.
func (a *Arena) Strdup(s string) []byte {
	n := len(s)
	d := a.AllocBytes(n + 1)
	copy(d, s)
	d[n] = 0
	return d
}

// DupString is Strdup returned as a string that shares the arena copy.
// The terminator is stored but not part of the result.
func (a *Arena) DupString(s string) string {
	d := a.Strdup(s)
	if len(s) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(d), len(s))
}

// EnsureCapacity makes sure the next allocation of n bytes is served
// without creating a block, appending one now if necessary.
func (a *Arena) EnsureCapacity(n int) {
	if n < 0 {
		return
	}
	a.current(alignSize(n))
}

// Reset marks every block empty and rewinds allocation to the first block.
// Capacity is kept for reuse. Every slice handed out before the call must no
// longer be used: its bytes will be overwritten by later allocations.
func (a *Arena) Reset() {
	for _, c := range a.blocks {
		c.usage = 0
	}
	a.end = 0
}

// Free releases every block and returns the arena to its empty state.
// The arena may be used again afterwards; freeing an empty arena is a no-op.
func (a *Arena) Free() {
	for i, c := range a.blocks {
		c.release()
		a.blocks[i] = nil
	}
	a.blocks = nil
	a.end = 0
}

// alignSize rounds n up to a multiple of the word size.
func alignSize(n int) int {
	mask := wordSize - 1
	if n > math.MaxInt-mask {
		panic("arena: allocation size overflows int")
	}
	return (n + mask) &^ mask
}
