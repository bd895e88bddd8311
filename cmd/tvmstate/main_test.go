// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/tvmstate/lvldb"
	"github.com/vechain/tvmstate/repository"
	"github.com/vechain/tvmstate/state"
	"github.com/vechain/tvmstate/store"
	"github.com/vechain/tvmstate/tvm"
	"github.com/vechain/tvmstate/worldstate"
)

var (
	alice = tvm.MustParseAddress("0x41a614f803b6fd780986a42c78ec9c7f77e6ded13c")
	bob   = tvm.MustParseAddress("0x41b614f803b6fd780986a42c78ec9c7f77e6ded13c")
)

func newTestDB(t *testing.T) *lvldb.LevelDB {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func openRoot(t *testing.T, db *lvldb.LevelDB) *repository.Repository {
	snap := worldstate.New(db, tvm.Bytes32{}, worldstate.Options{})
	t.Cleanup(snap.Close)
	return repository.NewRoot(snap, db, tvm.DefaultProtocolConfig())
}

func seedBalance(t *testing.T, db *lvldb.LevelDB, addr tvm.Address, balance int64) {
	acc := state.NewAccount(addr, state.AccountNormal)
	acc.Balance = balance
	require.NoError(t, store.Accounts.Put(db, addr[:], acc))
}

func balanceOf(t *testing.T, repo *repository.Repository, addr tvm.Address) int64 {
	b, err := repo.GetBalance(addr)
	require.NoError(t, err)
	return b
}

func TestTransfer(t *testing.T) {
	db := newTestDB(t)
	seedBalance(t, db, alice, 100)

	require.NoError(t, transfer(openRoot(t, db), alice, bob, 40))

	reopened := openRoot(t, db)
	assert.Equal(t, int64(60), balanceOf(t, reopened, alice))
	assert.Equal(t, int64(40), balanceOf(t, reopened, bob))
}

func TestTransferInsufficient(t *testing.T) {
	db := newTestDB(t)
	seedBalance(t, db, alice, 10)

	err := transfer(openRoot(t, db), alice, bob, 11)
	assert.ErrorIs(t, err, repository.ErrInsufficientBalance)

	reopened := openRoot(t, db)
	assert.Equal(t, int64(10), balanceOf(t, reopened, alice))
	acc, err := reopened.GetAccount(bob)
	require.NoError(t, err)
	assert.Nil(t, acc, "nothing persisted on failure")
}

func TestTransferInvalidAmount(t *testing.T) {
	db := newTestDB(t)
	assert.Error(t, transfer(openRoot(t, db), alice, bob, 0))
	assert.Error(t, transfer(openRoot(t, db), alice, bob, -1))
}

func TestDumpAccount(t *testing.T) {
	db := newTestDB(t)
	seedBalance(t, db, alice, 123)

	var buf bytes.Buffer
	require.NoError(t, dumpAccount(&buf, openRoot(t, db), alice))
	assert.Contains(t, buf.String(), "balance:     123")
	assert.Contains(t, buf.String(), "energy left: 0")

	buf.Reset()
	require.NoError(t, dumpAccount(&buf, openRoot(t, db), bob))
	assert.Contains(t, buf.String(), "not found")
}

func TestPrintProps(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, store.DynamicProperties.Put(db, tvm.KeyTotalNetWeight, state.EncodeInt64(5)))
	require.NoError(t, store.DynamicProperties.Put(db, tvm.KeyTotalNetLimit, []byte{1}))

	var buf bytes.Buffer
	require.NoError(t, printProps(&buf, openRoot(t, db)))
	out := buf.String()
	assert.Contains(t, out, "total net weight:     5")
	assert.Contains(t, out, "total net limit:      <malformed 01>")
	assert.Contains(t, out, "total energy limit:   <unset>")
}

func TestParseRoot(t *testing.T) {
	root, err := parseRoot("")
	require.NoError(t, err)
	assert.True(t, root.IsZero())

	_, err = parseRoot("0x1234")
	assert.Error(t, err)
}

func TestFullVersion(t *testing.T) {
	assert.Contains(t, fullVersion(), "-dev")
}
