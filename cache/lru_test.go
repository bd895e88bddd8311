// Copyright (c) 2018 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/tvmstate/cache"
)

func TestLRUAddGet(t *testing.T) {
	c, err := cache.NewLRU[uint64, string](2)
	require.NoError(t, err)

	c.Add(1, "one")
	c.Add(2, "two")
	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	// 2 is least recently used
	assert.True(t, c.Add(3, "three"))
	_, ok = c.Get(2)
	assert.False(t, ok)
	assert.Equal(t, 2, c.Len())

	_, hit, miss := c.Stats().Stats()
	assert.Equal(t, int64(1), hit)
	assert.Equal(t, int64(1), miss)

	c.Remove(1)
	_, ok = c.Get(1)
	assert.False(t, ok)

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestLRUInvalidSize(t *testing.T) {
	_, err := cache.NewLRU[int, int](0)
	assert.Error(t, err)
}

func TestLRUGetOrLoad(t *testing.T) {
	c, err := cache.NewLRU[string, int](16)
	require.NoError(t, err)

	loads := 0
	loader := func(key string) (int, error) {
		loads++
		return len(key), nil
	}

	v, err := c.GetOrLoad("abc", loader)
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = c.GetOrLoad("abc", loader)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, 1, loads)

	failure := errors.New("boom")
	_, err = c.GetOrLoad("x", func(string) (int, error) { return 0, failure })
	assert.Equal(t, failure, err)
	_, ok := c.Get("x")
	assert.False(t, ok)
}
