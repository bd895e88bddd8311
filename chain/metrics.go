// Copyright (c) 2026 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package chain

import "github.com/vechain/tvmstate/metrics"

var metricBlockReaderCounter = metrics.LazyLoadCounterVec("block_reader_count", []string{"type", "target"})
