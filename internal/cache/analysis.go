// Package cache memoizes analyses per session and answer sheet.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mind-engage/mindengage-psychotest/internal/psychotest"
)

const defaultSize = 512

// AnalysisCache is safe for concurrent use.
type AnalysisCache struct {
	entries *lru.Cache[string, psychotest.Result]
}

func NewAnalysisCache(size int) (*AnalysisCache, error) {
	if size <= 0 {
		size = defaultSize
	}
	c, err := lru.New[string, psychotest.Result](size)
	if err != nil {
		return nil, err
	}
	return &AnalysisCache{entries: c}, nil
}

// Key binds a session id to the exact answers it was scored from, so an
// answer update never serves a stale analysis.
func Key(sessionID string, answers []byte) string {
	sum := sha256.Sum256(answers)
	return sessionID + ":" + hex.EncodeToString(sum[:])
}

func (c *AnalysisCache) Get(key string) (psychotest.Result, bool) {
	if c == nil {
		return psychotest.Result{}, false
	}
	return c.entries.Get(key)
}

func (c *AnalysisCache) Put(key string, r psychotest.Result) {
	if c == nil {
		return
	}
	c.entries.Add(key, r)
}

// Forget drops every entry belonging to sessionID.
func (c *AnalysisCache) Forget(sessionID string) {
	if c == nil {
		return
	}
	prefix := sessionID + ":"
	for _, k := range c.entries.Keys() {
		if len(k) > len(prefix) && k[:len(prefix)] == prefix {
			c.entries.Remove(k)
		}
	}
}

func (c *AnalysisCache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}
