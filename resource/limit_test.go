// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package resource

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalEnergyLimit(t *testing.T) {
	// under one TRX
	assert.Equal(t, int64(0), GlobalEnergyLimit(999_999, 90_000_000_000, 1000))

	// 10 TRX of 1000 total weight, 90e9 limit
	assert.Equal(t, int64(900_000_000), GlobalEnergyLimit(10_000_000, 90_000_000_000, 1000))

	// only whole TRX count
	assert.Equal(t, int64(900_000_000), GlobalEnergyLimit(10_999_999, 90_000_000_000, 1000))

	// divide in floating point first, then truncate
	assert.Equal(t, int64(3), GlobalEnergyLimit(10_000_000, 1, 3))
	assert.Equal(t, int64(6), GlobalEnergyLimit(20_000_000, 1, 3))

	// inconsistent weights saturate
	assert.Equal(t, int64(math.MaxInt64), GlobalEnergyLimit(10_000_000, 1, 0))
	assert.Equal(t, int64(0), GlobalEnergyLimit(10_000_000, 0, 0))
}

func TestGlobalNetLimit(t *testing.T) {
	assert.Equal(t, int64(0), GlobalNetLimit(999_999, 43_200_000_000, 1000))
	assert.Equal(t, int64(432_000_000), GlobalNetLimit(10_000_000, 43_200_000_000, 1000))
	assert.Equal(t, int64(0), GlobalNetLimit(10_000_000, 43_200_000_000, 0))
}
