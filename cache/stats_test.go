// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	var cs Stats
	changed, hit, miss := cs.Stats()
	assert.False(t, changed, "empty stats start at zero rate")
	assert.Zero(t, hit)
	assert.Zero(t, miss)

	cs.Hit()
	assert.Equal(t, int64(1), cs.Miss())

	changed, hit, miss = cs.Stats()
	assert.True(t, changed)
	assert.Equal(t, int64(1), hit)
	assert.Equal(t, int64(1), miss)

	changed, _, _ = cs.Stats()
	assert.False(t, changed, "rate unchanged")

	// 2 hits, 2 misses keeps the rate at 0.5
	cs.Hit()
	cs.Miss()
	changed, _, _ = cs.Stats()
	assert.False(t, changed)

	assert.Equal(t, int64(3), cs.Hit())
	changed, hit, _ = cs.Stats()
	assert.True(t, changed)
	assert.Equal(t, int64(3), hit)
}

func TestHitRate(t *testing.T) {
	assert.Equal(t, "n/a", HitRate(0, 0))
	assert.Equal(t, "0.500", HitRate(1, 1))
	assert.Equal(t, "0.667", HitRate(2, 1))
	assert.Equal(t, "1.000", HitRate(7, 0))
}
