// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/tvmstate/tvm"
)

func TestAccountFrozen(t *testing.T) {
	acc := Account{
		FrozenForBandwidth:                  10,
		FrozenForEnergy:                     20,
		AcquiredDelegatedFrozenForBandwidth: 1,
		AcquiredDelegatedFrozenForEnergy:    2,
	}
	assert.Equal(t, int64(11), acc.AllFrozenBalanceForBandwidth())
	assert.Equal(t, int64(22), acc.AllFrozenBalanceForEnergy())
}

func TestAccountAssets(t *testing.T) {
	acc := NewAccount(tvm.BytesToAddress([]byte("acc")), AccountNormal)
	assert.Equal(t, int64(0), acc.AssetV2("1000001"))

	require.NoError(t, acc.AddAssetAmountV2("1000001", 100))
	assert.Equal(t, int64(100), acc.AssetV2("1000001"))

	require.NoError(t, acc.ReduceAssetAmountV2("1000001", 40))
	assert.Equal(t, int64(60), acc.AssetV2("1000001"))

	err := acc.ReduceAssetAmountV2("1000001", 61)
	assert.True(t, errors.Is(err, ErrAssetInsufficient))
	assert.Equal(t, int64(60), acc.AssetV2("1000001"))

	require.NoError(t, acc.AddAssetAmountV2("big", math.MaxInt64))
	err = acc.AddAssetAmountV2("big", 1)
	assert.True(t, errors.Is(err, ErrAssetOverflow))
	assert.Equal(t, int64(math.MaxInt64), acc.AssetV2("big"))
}

func TestAccountCopyIsDeep(t *testing.T) {
	addr := tvm.BytesToAddress([]byte("acc"))
	acc := NewAccountWithName(addr, "alice", AccountNormal)
	acc.OwnerPermission = NewDefaultOwnerPermission(addr)
	acc.ActivePermissions = []*Permission{NewDefaultActivePermission(addr, []byte{0x7f})}
	require.NoError(t, acc.AddAssetAmountV2("1", 1))

	cpy := acc.Copy()
	assert.Equal(t, acc, cpy)

	cpy.Name[0] = 'A'
	cpy.AssetsV2["1"] = 2
	cpy.OwnerPermission.Keys[0].Weight = 5
	cpy.ActivePermissions[0].Operations[0] = 0

	assert.Equal(t, "alice", string(acc.Name))
	assert.Equal(t, int64(1), acc.AssetV2("1"))
	assert.Equal(t, int64(1), acc.OwnerPermission.Keys[0].Weight)
	assert.Equal(t, byte(0x7f), acc.ActivePermissions[0].Operations[0])
}

func TestAccountEncoding(t *testing.T) {
	addr := tvm.BytesToAddress([]byte("acc"))
	acc := &Account{
		Address:           addr,
		Type:              AccountContract,
		Balance:           -1,
		AssetsV2:          map[string]int64{"b": 2, "a": 1},
		EnergyUsage:       100,
		LatestConsumeTime: 9,
		OwnerPermission:   NewDefaultOwnerPermission(addr),
	}

	data, err := AccountCodec.Encode(acc)
	require.NoError(t, err)

	// map iteration order must not leak into the encoding
	for i := 0; i < 10; i++ {
		again, err := AccountCodec.Encode(acc.Copy())
		require.NoError(t, err)
		assert.Equal(t, data, again)
	}

	dec, err := AccountCodec.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, acc, dec)
}

func TestAccountTypeString(t *testing.T) {
	assert.Equal(t, "Normal", AccountNormal.String())
	assert.Equal(t, "Contract", AccountContract.String())
	assert.Equal(t, "Unknown", AccountType(9).String())
}
