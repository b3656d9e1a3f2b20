package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSetGetDelete(t *testing.T) {
	c := New[string, bool](time.Minute, 0)
	defer c.Close()

	_, ok := c.Get("1")
	assert.False(t, ok)

	c.Set("1", true)
	v, ok := c.Get("1")
	assert.True(t, ok)
	assert.True(t, v)

	c.Delete("1")
	_, ok = c.Get("1")
	assert.False(t, ok)
}

func TestExpiredEntriesAreNotReturned(t *testing.T) {
	c := New[string, int](10*time.Millisecond, 0)
	defer c.Close()

	c.Set("a", 1)
	time.Sleep(20 * time.Millisecond)
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len(), "physical removal happens in cleanup")

	c.evictExpired()
	assert.Zero(t, c.Len())
}

func TestClearAndDoubleClose(t *testing.T) {
	c := New[int, string](time.Minute, time.Millisecond)
	c.Set(1, "x")
	c.Set(2, "y")
	c.Clear()
	assert.Zero(t, c.Len())

	c.Close()
	c.Close()
}
