// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/tvmstate/kv"
	"github.com/vechain/tvmstate/state"
	"github.com/vechain/tvmstate/store"
	"github.com/vechain/tvmstate/tvm"
)

func TestTotalWeights(t *testing.T) {
	env := newTestEnv(t, tvm.DefaultProtocolConfig())
	env.seedProp(tvm.KeyTotalEnergyWeight, 100)
	root := env.newRoot()

	w, err := root.GetTotalNetWeight()
	require.NoError(t, err)
	assert.Equal(t, int64(0), w, "absent reads as 0")

	child := root.NewChild()
	require.NoError(t, child.AddTotalEnergyWeight(50))
	require.NoError(t, child.AddTotalNetWeight(-5))

	w, err = child.GetTotalEnergyWeight()
	require.NoError(t, err)
	assert.Equal(t, int64(150), w)

	w, err = child.NewChild().GetTotalEnergyWeight()
	require.NoError(t, err)
	assert.Equal(t, int64(150), w, "visible to children")

	w, err = root.GetTotalEnergyWeight()
	require.NoError(t, err)
	assert.Equal(t, int64(100), w, "isolated from the parent")

	require.NoError(t, child.Commit())
	w, err = root.GetTotalNetWeight()
	require.NoError(t, err)
	assert.Equal(t, int64(-5), w)

	root.SaveTotalEnergyWeight(9)
	require.NoError(t, root.Commit())

	raw, _, err := store.DynamicProperties.Get(env.db, tvm.KeyTotalEnergyWeight)
	require.NoError(t, err)
	assert.Equal(t, state.EncodeInt64(9), raw)
}

func TestMalformedProperty(t *testing.T) {
	env := newTestEnv(t, tvm.DefaultProtocolConfig())
	env.seed(func(w kv.Putter) error {
		return store.DynamicProperties.Put(w, tvm.KeyTotalEnergyWeight, []byte{1, 2, 3})
	})
	root := env.newRoot()

	w, err := root.GetTotalEnergyWeight()
	require.NoError(t, err)
	assert.Equal(t, int64(0), w)

	require.NoError(t, root.AddTotalEnergyWeight(4))
	w, err = root.GetTotalEnergyWeight()
	require.NoError(t, err)
	assert.Equal(t, int64(4), w)
}

func TestResourceLimits(t *testing.T) {
	cfg := tvm.DefaultProtocolConfig()
	cfg.GenesisTimestamp = 1_000
	env := newTestEnv(t, cfg)
	env.seedProp(tvm.KeyLatestBlockHeaderTime, 1_000+100*tvm.BlockProducedInterval)
	env.seedProp(tvm.KeyTotalEnergyCurrentLimit, 90_000_000_000)
	env.seedProp(tvm.KeyTotalEnergyWeight, 1_000)
	env.seedProp(tvm.KeyTotalNetLimit, 43_200_000_000)
	env.seedProp(tvm.KeyTotalNetWeight, 1_000)
	root := env.newRoot()

	slot, err := root.GetHeadSlot()
	require.NoError(t, err)
	assert.Equal(t, int64(100), slot)

	acc := state.NewAccount(addrA, state.AccountNormal)
	acc.FrozenForEnergy = 6_000_000
	acc.AcquiredDelegatedFrozenForEnergy = 4_000_000
	acc.FrozenForBandwidth = 10_000_000

	limit, err := root.CalculateGlobalEnergyLimit(acc)
	require.NoError(t, err)
	assert.Equal(t, int64(900_000_000), limit)

	left, err := root.GetAccountLeftEnergyFromFreeze(acc)
	require.NoError(t, err)
	assert.Equal(t, int64(900_000_000), left)

	acc.EnergyUsage = 1_000
	acc.LatestConsumeTimeForEnergy = 100
	left, err = root.GetAccountLeftEnergyFromFreeze(acc)
	require.NoError(t, err)
	assert.Equal(t, int64(900_000_000-1_000), left)

	// a full window ago, fully recovered
	acc.LatestConsumeTimeForEnergy = 100 - tvm.WindowSize
	left, err = root.GetAccountLeftEnergyFromFreeze(acc)
	require.NoError(t, err)
	assert.Equal(t, int64(900_000_000), left)

	netLimit, err := root.CalculateGlobalNetLimit(acc)
	require.NoError(t, err)
	assert.Equal(t, int64(432_000_000), netLimit)

	acc.NetUsage = 1_000_000_000
	acc.LatestConsumeTime = 100
	left, err = root.GetAccountLeftNetFromFreeze(acc)
	require.NoError(t, err)
	assert.Equal(t, int64(0), left, "never negative")
}

func TestCreateNormalAccount(t *testing.T) {
	ops := []byte{0x7f, 0xff, 0x1f, 0xc0}

	t.Run("multi-sign", func(t *testing.T) {
		env := newTestEnv(t, tvm.DefaultProtocolConfig())
		env.seedProp(tvm.KeyLatestBlockHeaderTime, 12_345)
		env.seed(func(w kv.Putter) error {
			return store.DynamicProperties.Put(w, tvm.KeyActiveDefaultOperations, ops)
		})
		root := env.newRoot()

		acc, err := root.CreateNormalAccount(addrA)
		require.NoError(t, err)
		assert.Equal(t, int64(12_345), acc.CreateTime)
		assert.Equal(t, state.AccountNormal, acc.Type)
		require.NotNil(t, acc.OwnerPermission)
		assert.Equal(t, state.OwnerPermission, acc.OwnerPermission.Type)
		assert.Equal(t, []state.PermissionKey{{Address: addrA, Weight: 1}}, acc.OwnerPermission.Keys)
		require.Len(t, acc.ActivePermissions, 1)
		assert.Equal(t, ops, acc.ActivePermissions[0].Operations)
		assert.Equal(t, Create, root.accounts.entries[AddressKey(addrA)].Type())
	})

	t.Run("single-sign", func(t *testing.T) {
		cfg := tvm.DefaultProtocolConfig()
		cfg.AllowMultiSign = false
		env := newTestEnv(t, cfg)
		root := env.newRoot()

		acc, err := root.CreateNormalAccount(addrA)
		require.NoError(t, err)
		assert.Nil(t, acc.OwnerPermission)
		assert.Empty(t, acc.ActivePermissions)
		assert.Equal(t, int64(0), acc.CreateTime)
	})
}
