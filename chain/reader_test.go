// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package chain_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vechain/tvmstate/block"
	. "github.com/vechain/tvmstate/chain"
	"github.com/vechain/tvmstate/lvldb"
	"github.com/vechain/tvmstate/store"
	"github.com/vechain/tvmstate/tvm"
)

func newBlock(parent tvm.Bytes32, num uint64) *block.Block {
	hdr := block.NewHeader(parent, num, num*3000, tvm.Address{}, tvm.Bytes32{}, tvm.Bytes32{})
	return block.New(hdr, nil)
}

func newTestReader(t *testing.T) (*lvldb.LevelDB, *BlockReader) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	r, err := NewBlockReader(db, 4)
	require.NoError(t, err)
	return db, r
}

func TestGetBlockByNumFromStore(t *testing.T) {
	db, r := newTestReader(t)

	b0 := newBlock(tvm.Bytes32{}, 0)
	b1 := newBlock(b0.Header().ID(), 1)
	require.NoError(t, store.SaveBlock(db, b0))
	require.NoError(t, store.SaveBlock(db, b1))

	got, err := r.GetBlockByNum(1)
	require.NoError(t, err)
	assert.Equal(t, b1.Header().ID(), got.Header().ID())

	id, err := r.GetBlockIDByNum(0)
	require.NoError(t, err)
	assert.Equal(t, b0.Header().ID(), id)
}

func TestGetBlockByNumFromRecent(t *testing.T) {
	db, r := newTestReader(t)

	b := newBlock(tvm.Bytes32{}, 5)
	// indexed, but the body only lives in memory
	require.NoError(t, store.BlockIndex.PutID(db, 5, b.Header().ID()))

	_, err := r.GetBlockByNum(5)
	assert.True(t, errors.Is(err, ErrBlockNotFound))

	r.AddRecent(b)
	got, err := r.GetBlockByNum(5)
	require.NoError(t, err)
	assert.Same(t, b, got)
}

func TestGetBlockByNumMissingIndex(t *testing.T) {
	_, r := newTestReader(t)

	_, err := r.GetBlockByNum(42)
	assert.True(t, errors.Is(err, ErrMissingBlockIndex))
	assert.Contains(t, err.Error(), "cannot find block num 42")
}

func TestNewBlockReaderInvalidSize(t *testing.T) {
	db, err := lvldb.NewMem()
	require.NoError(t, err)
	defer db.Close()

	_, err = NewBlockReader(db, 0)
	assert.Error(t, err)
}
