package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	c := New()
	c.Set(Key("Android 17 Beta 2", "zh-CN"), "安卓 17 Beta 2", time.Minute)

	got, ok := c.Get(Key("Android 17 Beta 2", "zh-CN"))
	require.True(t, ok)
	require.Equal(t, "安卓 17 Beta 2", got)
}

func TestGetMissing(t *testing.T) {
	c := New()
	_, ok := c.Get(Key("never stored", "zh-CN"))
	require.False(t, ok)
}

func TestExpiry(t *testing.T) {
	c := New()
	c.Set("k", "v", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("k")
	require.False(t, ok)
}

func TestKeySeparatesLanguages(t *testing.T) {
	require.NotEqual(t, Key("text", "zh-CN"), Key("text", "en"))
}
