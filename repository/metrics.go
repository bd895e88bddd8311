// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package repository

import "github.com/vechain/tvmstate/metrics"

var (
	metricCacheHitMiss     = metrics.LazyLoadCounterVec("repository_cache_hit_miss_count", []string{"kind", "event"})
	metricCommitCount      = metrics.LazyLoadCounterVec("repository_commit_count", []string{"target"})
	metricCommitEntries    = metrics.LazyLoadCounterVec("repository_commit_entries_count", []string{"target"})
	metricCommitDurationMs = metrics.LazyLoadHistogram("repository_commit_duration_ms", metrics.BucketCommit)
)
