// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package worldstate

import "github.com/vechain/tvmstate/metrics"

var metricCacheHitMiss = metrics.LazyLoadGaugeVec("worldstate_cache_hit_miss_count", []string{"type", "event"})
