// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package repository

import (
	"github.com/vechain/tvmstate/resource"
	"github.com/vechain/tvmstate/state"
	"github.com/vechain/tvmstate/tvm"
)

// getInt64Property reads a scalar dynamic property through the layer.
// Absent and malformed properties read as 0.
func (r *Repository) getInt64Property(key []byte) (int64, error) {
	data, err := r.GetDynamicProperty(key)
	if err != nil {
		return 0, err
	}
	if data == nil {
		return 0, nil
	}
	v, err := state.DecodeInt64(data)
	if err != nil {
		logger.Warn("malformed dynamic property", "key", string(key), "err", err)
		return 0, nil
	}
	return v, nil
}

// GetTotalNetWeight returns the total frozen weight for bandwidth, in TRX.
func (r *Repository) GetTotalNetWeight() (int64, error) {
	return r.getInt64Property(tvm.KeyTotalNetWeight)
}

// GetTotalEnergyWeight returns the total frozen weight for energy, in TRX.
func (r *Repository) GetTotalEnergyWeight() (int64, error) {
	return r.getInt64Property(tvm.KeyTotalEnergyWeight)
}

// SaveTotalNetWeight sets the total frozen weight for bandwidth.
func (r *Repository) SaveTotalNetWeight(weight int64) {
	r.UpdateDynamicProperty(tvm.KeyTotalNetWeight, state.EncodeInt64(weight))
}

// SaveTotalEnergyWeight sets the total frozen weight for energy.
func (r *Repository) SaveTotalEnergyWeight(weight int64) {
	r.UpdateDynamicProperty(tvm.KeyTotalEnergyWeight, state.EncodeInt64(weight))
}

// AddTotalNetWeight adds amount, in TRX, to the total weight for bandwidth.
func (r *Repository) AddTotalNetWeight(amount int64) error {
	weight, err := r.GetTotalNetWeight()
	if err != nil {
		return err
	}
	r.SaveTotalNetWeight(weight + amount)
	return nil
}

// AddTotalEnergyWeight adds amount, in TRX, to the total weight for energy.
func (r *Repository) AddTotalEnergyWeight(amount int64) error {
	weight, err := r.GetTotalEnergyWeight()
	if err != nil {
		return err
	}
	r.SaveTotalEnergyWeight(weight + amount)
	return nil
}

// GetHeadSlot returns the slot of the latest block.
func (r *Repository) GetHeadSlot() (int64, error) {
	latest, err := r.getInt64Property(tvm.KeyLatestBlockHeaderTime)
	if err != nil {
		return 0, err
	}
	return resource.HeadSlot(latest, r.cfg.GenesisTimestamp), nil
}

// CalculateGlobalEnergyLimit returns the energy the account earns with its
// frozen balance.
func (r *Repository) CalculateGlobalEnergyLimit(acc *state.Account) (int64, error) {
	limit, err := r.getInt64Property(tvm.KeyTotalEnergyCurrentLimit)
	if err != nil {
		return 0, err
	}
	weight, err := r.GetTotalEnergyWeight()
	if err != nil {
		return 0, err
	}
	return resource.GlobalEnergyLimit(acc.AllFrozenBalanceForEnergy(), limit, weight), nil
}

// CalculateGlobalNetLimit returns the bandwidth the account earns with its
// frozen balance.
func (r *Repository) CalculateGlobalNetLimit(acc *state.Account) (int64, error) {
	limit, err := r.getInt64Property(tvm.KeyTotalNetLimit)
	if err != nil {
		return 0, err
	}
	weight, err := r.GetTotalNetWeight()
	if err != nil {
		return 0, err
	}
	return resource.GlobalNetLimit(acc.AllFrozenBalanceForBandwidth(), limit, weight), nil
}

// GetAccountLeftEnergyFromFreeze returns the energy left to the account now,
// after its usage recovered over the window.
func (r *Repository) GetAccountLeftEnergyFromFreeze(acc *state.Account) (int64, error) {
	now, err := r.GetHeadSlot()
	if err != nil {
		return 0, err
	}
	limit, err := r.CalculateGlobalEnergyLimit(acc)
	if err != nil {
		return 0, err
	}
	return resource.LeftFromFreeze(limit, acc.EnergyUsage, acc.LatestConsumeTimeForEnergy, now, tvm.WindowSize), nil
}

// GetAccountLeftNetFromFreeze is the bandwidth analogue of
// GetAccountLeftEnergyFromFreeze.
func (r *Repository) GetAccountLeftNetFromFreeze(acc *state.Account) (int64, error) {
	now, err := r.GetHeadSlot()
	if err != nil {
		return 0, err
	}
	limit, err := r.CalculateGlobalNetLimit(acc)
	if err != nil {
		return 0, err
	}
	return resource.LeftFromFreeze(limit, acc.NetUsage, acc.LatestConsumeTime, now, tvm.WindowSize), nil
}
