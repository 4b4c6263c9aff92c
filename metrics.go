package arena

// TotalUsage returns the bytes handed out across every block in the chain.
// This includes internal fragmentation due to alignment.
func (a *Arena) TotalUsage() int {
	sum := 0
	for _, c := range a.blocks {
		sum += c.usage
	}
	return sum
}

// TotalCapacity returns the total capacity (in bytes) of all blocks in the arena.
func (a *Arena) TotalCapacity() int {
	sum := 0
	for _, c := range a.blocks {
		sum += c.capacity
	}
	return sum
}

// NumBlocks returns the number of blocks currently in the chain.
func (a *Arena) NumBlocks() int {
	return len(a.blocks)
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	capacity := a.TotalCapacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.TotalUsage()) / float64(capacity)
}

// BlockSize returns the block unit used by this arena.
func (a *Arena) BlockSize() int {
	return a.unit()
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Usage:       a.TotalUsage(),
		Capacity:    a.TotalCapacity(),
		NumBlocks:   a.NumBlocks(),
		BlockSize:   a.BlockSize(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Usage       int     // Bytes currently allocated
	Capacity    int     // Total capacity in bytes
	NumBlocks   int     // Number of blocks
	BlockSize   int     // Block unit
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}

// Thread-safe metrics for SafeArena

// TotalUsage thread-safely returns the bytes handed out across all blocks.
func (s *SafeArena) TotalUsage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TotalUsage()
}

// TotalCapacity thread-safely returns the total capacity of all blocks.
func (s *SafeArena) TotalCapacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.TotalCapacity()
}

// NumBlocks thread-safely returns the number of blocks in the chain.
func (s *SafeArena) NumBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.NumBlocks()
}

// Utilization thread-safely returns the ratio of bytes in use to total capacity.
func (s *SafeArena) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Utilization()
}

// Metrics thread-safely returns a snapshot of arena statistics.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
