package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

func (f *fakeTime) advance(d time.Duration) { f.t = f.t.Add(d) }

func TestClockElapsed(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClock(WithTimeSource(ft.now))

	assert.Equal(t, 0.0, c.Elapsed())

	ft.advance(5 * time.Second)
	assert.Equal(t, 5.0, c.Elapsed())
	assert.Equal(t, 5.0, c.Delta())

	ft.advance(250 * time.Millisecond)
	assert.Equal(t, 5.25, c.Elapsed())
	assert.Equal(t, 0.25, c.Delta())
	assert.Equal(t, 5.25, c.Last())
}

func TestClockNeverDecreases(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewClock(WithTimeSource(ft.now))

	ft.advance(2 * time.Second)
	assert.Equal(t, 2.0, c.Elapsed())

	ft.advance(-time.Second)
	assert.Equal(t, 2.0, c.Elapsed())
	assert.Equal(t, 0.0, c.Delta())

	ft.advance(2 * time.Second)
	assert.Equal(t, 3.0, c.Elapsed())
}

func TestClockRealTimeSource(t *testing.T) {
	c := NewClock()
	first := c.Elapsed()
	second := c.Elapsed()
	assert.GreaterOrEqual(t, second, first)
}
