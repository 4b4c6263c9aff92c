package arena

import (
	"fmt"
	"sync"
	"unsafe"
)

// Example demonstrates basic arena usage
func Example() {
	// Create a new arena with the default block size
	a := NewArena(0)
	defer a.Free() // Always clean up

	// Allocate raw bytes
	buf := a.AllocBytes(1024)
	fmt.Printf("Allocated buffer of size: %d\n", len(buf))

	// Allocate a typed value (zeroed)
	ptr := Alloc[int](a)
	*ptr = 42
	fmt.Printf("Allocated int with value: %d\n", *ptr)

	// Allocate a slice
	slice := AllocSlice[int](a, 5)
	for i := range slice {
		slice[i] = i * 2
	}
	fmt.Printf("Allocated slice: %v\n", slice)

	// Check memory usage
	fmt.Printf("Memory in use: %d bytes\n", a.TotalUsage())
	fmt.Printf("Utilization: %.2f%%\n", a.Utilization()*100)

	// Reset for reuse
	a.Reset()
	fmt.Printf("After reset, memory in use: %d bytes\n", a.TotalUsage())

	// Output:
	// Allocated buffer of size: 1024
	// Allocated int with value: 42
	// Allocated slice: [0 2 4 6 8]
	// Memory in use: 1072 bytes
	// Utilization: 13.09%
	// After reset, memory in use: 0 bytes
}

// ExampleSafeArena demonstrates thread-safe arena usage
func ExampleSafeArena() {
	// Create a thread-safe arena
	s := NewSafeArena(1024)
	defer s.Free()

	var wg sync.WaitGroup
	const numWorkers = 3

	// Launch concurrent workers
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()

			// Each worker allocates some memory
			buf := s.AllocBytes(100)
			ptr := SafeAlloc[int](s)
			*ptr = id

			fmt.Printf("Worker %d allocated %d bytes\n", id, len(buf))
		}(i)
	}

	wg.Wait()
	fmt.Printf("Total memory in use: %d bytes\n", s.TotalUsage())
	// Output varies due to goroutine scheduling, but shows concurrent allocation
}

// ExampleArena_webServer demonstrates arena usage in a web server context
func ExampleArena_webServer() {
	// Simulate a request handler that uses arena for temporary allocations
	handleRequest := func(requestID int) {
		// Create arena for this request
		a := NewArena(4096) // 4KB blocks
		defer a.Free()

		// Allocate temporary objects for request processing
		requestData := AllocSlice[byte](a, 1024)
		responseBuffer := AllocSlice[byte](a, 2048)

		// Simulate processing
		copy(requestData, []byte("request data"))
		copy(responseBuffer, []byte("response data"))

		fmt.Printf("Request %d processed\n", requestID)
		fmt.Printf("Arena utilization: %.1f%%\n", a.Utilization()*100)
	}

	// Simulate multiple requests
	for i := 1; i <= 3; i++ {
		handleRequest(i)
	}

	// Output:
	// Request 1 processed
	// Arena utilization: 75.0%
	// Request 2 processed
	// Arena utilization: 75.0%
	// Request 3 processed
	// Arena utilization: 75.0%
}

// ExampleArena_Reset demonstrates arena reuse with Reset
func ExampleArena_Reset() {
	a := NewArena(1024)
	defer a.Free()

	for round := 1; round <= 3; round++ {
		// Allocate memory for this round
		for i := 0; i < 5; i++ {
			Alloc[int64](a)
		}

		fmt.Printf("Round %d - Memory in use: %d bytes\n", round, a.TotalUsage())

		// Reset arena for next round
		a.Reset()
	}

	// Output:
	// Round 1 - Memory in use: 40 bytes
	// Round 2 - Memory in use: 40 bytes
	// Round 3 - Memory in use: 40 bytes
}

// ExampleArena_Realloc shows that growing copies and zero-extends while
// shrinking is a no-op.
func ExampleArena_Realloc() {
	a := NewArena(1024)
	defer a.Free()

	b := a.AllocBytes(4)
	copy(b, "abcd")

	b = a.Realloc(b, 8)
	fmt.Printf("%q\n", b)

	same := a.Realloc(b, 2)
	fmt.Println(len(same), unsafe.SliceData(same) == unsafe.SliceData(b))

	// Output:
	// "abcd\x00\x00\x00\x00"
	// 8 true
}

// ExampleArena_Strdup demonstrates NUL-terminated string duplication
func ExampleArena_Strdup() {
	var a Arena
	defer a.Free()

	d := a.Strdup("hello")
	fmt.Printf("%q %d\n", d, len(d))
	fmt.Println(a.DupString("world"))

	// Output:
	// "hello\x00" 6
	// world
}

// ExampleArena_Free shows that Free empties the arena but leaves it usable
func ExampleArena_Free() {
	a := NewArena(0)

	a.AllocBytes(10 * DefaultBlockSize)
	fmt.Printf("Capacity: %d bytes in %d block(s)\n", a.TotalCapacity(), a.NumBlocks())

	a.Free()
	fmt.Printf("After free: capacity %d, usage %d\n", a.TotalCapacity(), a.TotalUsage())

	a.AllocBytes(100)
	fmt.Printf("Reused: capacity %d\n", a.TotalCapacity())

	// Output:
	// Capacity: 131072 bytes in 1 block(s)
	// After free: capacity 0, usage 0
	// Reused: capacity 8192
}

// ExampleArenaMetrics demonstrates monitoring arena performance
func ExampleArenaMetrics() {
	a := NewArena(1024)
	defer a.Free()

	// Allocate various sizes to see metrics
	a.AllocBytes(100)
	Alloc[int64](a)
	AllocSlice[int32](a, 50)

	// Get detailed metrics
	metrics := a.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Usage: %d bytes\n", metrics.Usage)
	fmt.Printf("  Capacity: %d bytes\n", metrics.Capacity)
	fmt.Printf("  Blocks: %d\n", metrics.NumBlocks)
	fmt.Printf("  Block size: %d bytes\n", metrics.BlockSize)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)

	// Output:
	// Metrics:
	//   Usage: 312 bytes
	//   Capacity: 1024 bytes
	//   Blocks: 1
	//   Block size: 1024 bytes
	//   Utilization: 30.5%
}

// ExampleArena_alignment demonstrates that allocations are properly aligned
func ExampleArena_alignment() {
	a := NewArena(1024)
	defer a.Free()

	// Allocate different types to show alignment
	ptr1 := Alloc[int8](a)
	ptr2 := Alloc[int64](a) // Should be 8-byte aligned
	ptr3 := Alloc[int32](a) // Should be 4-byte aligned

	fmt.Printf("int8 address alignment: %d\n", uintptr(unsafe.Pointer(ptr1))%8)
	fmt.Printf("int64 address alignment: %d\n", uintptr(unsafe.Pointer(ptr2))%8)
	fmt.Printf("int32 address alignment: %d\n", uintptr(unsafe.Pointer(ptr3))%8)

	// Output:
	// int8 address alignment: 0
	// int64 address alignment: 0
	// int32 address alignment: 0
}
