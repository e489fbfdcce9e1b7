package cache_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mind-engage/mindengage-psychotest/internal/cache"
	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
)

func TestKey_DependsOnAnswers(t *testing.T) {
	a := cache.Key("s1", []byte(`[1,2]`))
	require.Equal(t, a, cache.Key("s1", []byte(`[1,2]`)))
	require.NotEqual(t, a, cache.Key("s1", []byte(`[1,3]`)))
	require.NotEqual(t, a, cache.Key("s2", []byte(`[1,2]`)))
}

func TestAnalysisCache_PutGetForget(t *testing.T) {
	c, err := cache.NewAnalysisCache(2)
	require.NoError(t, err)

	k1 := cache.Key("s1", []byte(`[1]`))
	k2 := cache.Key("s1", []byte(`[2]`))
	k3 := cache.Key("s10", []byte(`[1]`))
	c.Put(k1, psychotest.Result{Instrument: psychotest.InstrumentPAPI, Answers: 1})
	c.Put(k2, psychotest.Result{Instrument: psychotest.InstrumentPAPI, Answers: 2})

	got, ok := c.Get(k1)
	require.True(t, ok)
	require.Equal(t, 1, got.Answers)

	// k2 is now least recently used and gets evicted.
	c.Put(k3, psychotest.Result{Answers: 3})
	_, ok = c.Get(k2)
	require.False(t, ok)
	require.Equal(t, 2, c.Len())

	c.Forget("s1")
	_, ok = c.Get(k1)
	require.False(t, ok)
	_, ok = c.Get(k3)
	require.True(t, ok, "s10 shares a prefix with s1 but must survive")
}

func TestAnalysisCache_NilIsNoop(t *testing.T) {
	var c *cache.AnalysisCache
	c.Put("k", psychotest.Result{})
	_, ok := c.Get("k")
	require.False(t, ok)
	c.Forget("s")
	require.Equal(t, 0, c.Len())
}
