// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tvm

// Constants of resource accounting.
const (
	Precision             int64 = 1_000_000  // fixed-point precision of average usage.
	WindowSizeMs          int64 = 86_400_000 // resource recovery window, 24 hours.
	BlockProducedInterval int64 = 3000       // (unit: ms) time interval between two consecutive blocks.

	// WindowSize is the recovery window measured in block slots.
	WindowSize = WindowSizeMs / BlockProducedInterval

	// TRXPrecision is the amount of sun in one frozen weight unit.
	TRXPrecision int64 = 1_000_000
)

// Keys of dynamic properties.
var (
	KeyTotalNetWeight          = []byte("TOTAL_NET_WEIGHT")
	KeyTotalEnergyWeight       = []byte("TOTAL_ENERGY_WEIGHT")
	KeyTotalNetLimit           = []byte("TOTAL_NET_LIMIT")
	KeyTotalEnergyCurrentLimit = []byte("TOTAL_ENERGY_CURRENT_LIMIT")
	KeyLatestBlockHeaderTime   = []byte("latest_block_header_timestamp")
	KeyActiveDefaultOperations = []byte("ACTIVE_DEFAULT_OPERATIONS")
)
