package clock

import (
	"sync"
	"time"
)

// Clock is a monotonic elapsed-time source for the render loop.
// Elapsed time starts at zero when the clock is created and never decreases.
type Clock interface {
	// Elapsed samples the time source and returns the seconds since the clock was created.
	// Also records the delta since the previous sample.
	//
	// Returns:
	//   - float64: elapsed seconds, never lower than any previously returned value
	Elapsed() float64

	// Delta returns the seconds between the two most recent samples.
	//
	// Returns:
	//   - float64: the last frame delta in seconds
	Delta() float64

	// Last returns the most recently sampled elapsed time without sampling again.
	//
	// Returns:
	//   - float64: the last elapsed seconds
	Last() float64
}

type clockImpl struct {
	mu *sync.Mutex

	now     func() time.Time
	start   time.Time
	elapsed float64
	delta   float64
}

var _ Clock = &clockImpl{}

// NewClock creates a Clock that starts counting immediately.
//
// Parameters:
//   - options: functional options to configure the clock
//
// Returns:
//   - Clock: the newly created clock
func NewClock(options ...ClockBuilderOption) Clock {
	c := &clockImpl{
		mu:  &sync.Mutex{},
		now: time.Now,
	}
	for _, option := range options {
		option(c)
	}
	c.start = c.now()
	return c
}

func (c *clockImpl) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	sample := c.now().Sub(c.start).Seconds()
	if sample < c.elapsed {
		// the time source stepped backwards; hold the last value
		sample = c.elapsed
	}
	c.delta = sample - c.elapsed
	c.elapsed = sample
	return c.elapsed
}

func (c *clockImpl) Delta() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delta
}

func (c *clockImpl) Last() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}
