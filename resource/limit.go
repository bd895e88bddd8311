// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package resource

import "github.com/vechain/tvmstate/tvm"

// GlobalEnergyLimit returns the share of the global energy limit an account
// earns with its frozen balance. Balances under one TRX earn nothing.
//
// The limit/weight ratio is taken in floating point before scaling by the
// account weight. A zero total weight divides to +Inf (or NaN with a zero
// limit), which ToInt64 saturates.
func GlobalEnergyLimit(frozenBalance, totalEnergyLimit, totalEnergyWeight int64) int64 {
	if frozenBalance < tvm.TRXPrecision {
		return 0
	}
	energyWeight := frozenBalance / tvm.TRXPrecision
	return ToInt64(float64(energyWeight) * (float64(totalEnergyLimit) / float64(totalEnergyWeight)))
}

// GlobalNetLimit is the bandwidth analogue of GlobalEnergyLimit.
// A zero total weight yields no bandwidth.
func GlobalNetLimit(frozenBalance, totalNetLimit, totalNetWeight int64) int64 {
	if frozenBalance < tvm.TRXPrecision {
		return 0
	}
	if totalNetWeight == 0 {
		return 0
	}
	netWeight := frozenBalance / tvm.TRXPrecision
	return ToInt64(float64(netWeight) * (float64(totalNetLimit) / float64(totalNetWeight)))
}
