package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("product:1", "detail")

	got, found := c.GetValue("product:1")
	assert.True(t, found)
	assert.Equal(t, "detail", got)

	_, found = c.GetValue("product:2")
	assert.False(t, found)
}

func TestCacheExpiry(t *testing.T) {
	c := New(time.Minute)

	c.Set("ephemeral", 1, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, found := c.GetValue("ephemeral")
	assert.False(t, found)
}

func TestCacheDeleteByPrefix(t *testing.T) {
	c := New(time.Minute)

	c.Set("products:list:a", 1)
	c.Set("products:list:b", 2)
	c.Set("product:1", 3)

	c.DeleteByPrefix("products:list:")

	_, found := c.GetValue("products:list:a")
	assert.False(t, found)
	_, found = c.GetValue("products:list:b")
	assert.False(t, found)
	_, found = c.GetValue("product:1")
	assert.True(t, found)
	assert.Equal(t, 1, c.Size())
}

func TestCacheDelete(t *testing.T) {
	c := New(time.Minute)

	c.Set("k", "v")
	c.Delete("k")

	_, found := c.GetValue("k")
	assert.False(t, found)
}
