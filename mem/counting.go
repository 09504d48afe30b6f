package mem

// Counting is a hook pair that tallies traffic through the registry.
// It is meant for tests and accounting probes; like the registry
// itself it is not synchronized.
type Counting struct {
	Allocs      int
	Frees       int
	AllocBytes  int
	FreedBytes  int
	FailAfter   int // fail the (FailAfter+1)-th Alloc; 0 disables
	denyStorage bool
}

// Hooks returns the pair backed by c's counters.
func (c *Counting) Hooks() *Hooks {
	return &Hooks{
		Alloc: c.alloc,
		Free:  c.free,
	}
}

// Deny makes every subsequent Alloc fail.
func (c *Counting) Deny() { c.denyStorage = true }

// Outstanding reports allocations not yet freed.
func (c *Counting) Outstanding() int { return c.Allocs - c.Frees }

func (c *Counting) alloc(n int) []byte {
	if c.denyStorage {
		return nil
	}
	if c.FailAfter > 0 && c.Allocs >= c.FailAfter {
		return nil
	}
	c.Allocs++
	c.AllocBytes += n
	return make([]byte, n)
}

func (c *Counting) free(buf []byte) {
	c.Frees++
	c.FreedBytes += len(buf)
}
