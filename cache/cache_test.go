package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetDel(t *testing.T) {
	c, err := New(1<<20, time.Minute)
	require.NoError(t, err)

	_, ok := c.Get(KeyTrades)
	assert.False(t, ok)

	c.Set(KeyTrades, []string{"a", "b"})
	got, ok := c.Get(KeyTrades)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	c.Del(KeyTrades, KeyPortfolio)
	_, ok = c.Get(KeyTrades)
	assert.False(t, ok)
}

func TestEntriesExpire(t *testing.T) {
	c, err := New(1<<20, 10*time.Millisecond)
	require.NoError(t, err)

	c.Set(KeyPortfolio, "rows")
	time.Sleep(50 * time.Millisecond)

	_, ok := c.Get(KeyPortfolio)
	assert.False(t, ok)
}
