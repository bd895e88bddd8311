// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package resource implements the windowed accounting of bandwidth and energy.
//
// Results must agree bit for bit with every other node, so float conversions
// are pinned down: rounding is half up and float to int64 saturates, NaN
// converting to 0.
package resource

import (
	"math"

	"github.com/vechain/tvmstate/tvm"
)

// DivideCeil returns numerator / denominator rounded up, for non-negative
// numerators.
func DivideCeil(numerator, denominator int64) int64 {
	q := numerator / denominator
	if numerator%denominator > 0 {
		q++
	}
	return q
}

// Increase adds usage to lastUsage, after decaying lastUsage linearly over
// the window from lastTime to now. Times are in block slots.
func Increase(lastUsage, usage, lastTime, now, windowSize int64) int64 {
	averageLastUsage := DivideCeil(lastUsage*tvm.Precision, windowSize)
	averageUsage := DivideCeil(usage*tvm.Precision, windowSize)

	if lastTime != now {
		if lastTime+windowSize > now {
			delta := now - lastTime
			decay := float64(windowSize-delta) / float64(windowSize)
			averageLastUsage = Round(float64(averageLastUsage) * decay)
		} else {
			averageLastUsage = 0
		}
	}
	averageLastUsage += averageUsage
	return usageOf(averageLastUsage, windowSize)
}

func usageOf(averageUsage, windowSize int64) int64 {
	return averageUsage * windowSize / tvm.Precision
}

// LeftFromFreeze returns what remains of limit after usage recovered up to now.
func LeftFromFreeze(limit, usage, lastTime, now, windowSize int64) int64 {
	newUsage := Increase(usage, 0, lastTime, now, windowSize)
	return max(limit-newUsage, 0)
}

// HeadSlot returns the slot of the head block.
func HeadSlot(latestBlockTimestamp, genesisTimestamp int64) int64 {
	return (latestBlockTimestamp - genesisTimestamp) / tvm.BlockProducedInterval
}

// Round rounds half up, saturating at the int64 range.
func Round(x float64) int64 {
	if math.IsNaN(x) {
		return 0
	}
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return ToInt64(f)
}

// ToInt64 truncates toward zero, saturating at the int64 range.
func ToInt64(x float64) int64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x >= math.MaxInt64:
		return math.MaxInt64
	case x <= math.MinInt64:
		return math.MinInt64
	}
	return int64(x)
}
