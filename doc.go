// Package arena implements a region allocator backed by a chain of blocks.
//
// # Overview
//
// An arena hands out memory from large backing blocks and releases it all
// at once instead of tracking individual frees. It suits programs that make
// many short-lived allocations sharing one lifetime, such as one CLI
// invocation or one parse pass:
//
//   - O(1) allocation with no per-object bookkeeping
//   - Bulk cleanup with Reset (keep capacity) or Free (drop everything)
//   - Less garbage collector pressure
//
// # Basic Usage
//
//	var a arena.Arena // the zero value is ready to use
//	defer a.Free()
//
//	buf := a.AllocBytes(1024)          // contents unspecified
//	zeroed := a.AllocBytesZeroed(64)   // contents zero
//	buf = a.Realloc(buf, 4096)         // copy, zero-extend
//	name := a.DupString("hello")       // NUL-terminated copy in the arena
//
//	ptr := arena.Alloc[MyStruct](&a)
//	slice := arena.AllocSlice[int](&a, 100)
//
//	a.Reset() // reuse capacity, invalidates everything above
//
// # Memory Layout
//
// Blocks are sized in multiples of a unit (DefaultBlockSize, 8 KiB). A
// request that does not fit gets a new block whose capacity is the unit
// doubled until the request fits, so a single huge allocation always gets a
// dedicated block. Blocks are never moved, shrunk or reordered. Sizes are
// rounded up to the machine word and every returned slice is word-aligned.
//
// After Reset, allocation restarts in the first block and walks forward
// through blocks that already exist before any new block is created.
//
// # Thread Safety
//
// Arena is not safe for concurrent use. Give each goroutine its own arena,
// or share a SafeArena, which serializes every call behind a mutex.
//
// # Important Notes
//
//   - Slices returned by the arena are only valid until the next Reset or Free
//   - Realloc never shrinks: a smaller size returns the input unchanged
//   - Memory is not zeroed unless using AllocBytesZeroed, Alloc or AllocSliceZeroed
//   - Running out of memory is fatal, as with any Go allocation
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Usage: %d of %d bytes\n", m.Usage, m.Capacity)
package arena
