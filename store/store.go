// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package store defines the persistent tables of the state layer, one per
// entity kind, laid out as buckets of a single kv store.
package store

import (
	"encoding/binary"

	"github.com/vechain/tvmstate/block"
	"github.com/vechain/tvmstate/kv"
	"github.com/vechain/tvmstate/state"
	"github.com/vechain/tvmstate/tvm"
)

// Entity tables.
var (
	Accounts           = NewTable("state.account", state.AccountCodec)
	Code               = NewTable[[]byte]("state.code", codeCodec{})
	Contracts          = NewTable("state.contract", state.ContractCodec)
	Abis               = NewTable("state.abi", state.AbiCodec)
	AssetIssues        = NewTable("state.asset", state.AssetIssueCodec)
	DynamicProperties  = NewTable("state.props", state.BytesCodec)
	DelegatedResources = NewTable("state.delegated", state.DelegatedResourceCodec)
	Votes              = NewTable("state.votes", state.VotesCodec)
	Delegation         = NewTable("state.delegation", state.BytesCodec)
	Witnesses          = NewTable("state.witness", state.WitnessCodec)
	StorageRows        = &StorageRowTable{NewTable[tvm.Bytes32]("state.rows", bytes32Codec{})}

	Blocks     = NewTable[*block.Block]("chain.block", blockCodec{})
	BlockIndex = &BlockIndexTable{NewTable[tvm.Bytes32]("chain.index", bytes32Codec{})}
)

// StorageRowTable stores contract storage rows by row key.
type StorageRowTable struct {
	*Table[tvm.Bytes32]
}

// Put saves the row. A zero value deletes the row.
func (t *StorageRowTable) Put(w kv.Putter, rowKey []byte, value tvm.Bytes32) error {
	if value.IsZero() {
		return t.Table.Delete(w, rowKey)
	}
	return t.Table.Put(w, rowKey, value)
}

// BlockIndexTable maps block number to block id.
type BlockIndexTable struct {
	*Table[tvm.Bytes32]
}

func numberKey(num uint64) []byte {
	var k [8]byte
	binary.BigEndian.PutUint64(k[:], num)
	return k[:]
}

// GetID returns the id of the block at the height.
func (t *BlockIndexTable) GetID(r kv.Getter, num uint64) (tvm.Bytes32, bool, error) {
	return t.Table.Get(r, numberKey(num))
}

// PutID indexes the block id by its height.
func (t *BlockIndexTable) PutID(w kv.Putter, num uint64, id tvm.Bytes32) error {
	return t.Table.Put(w, numberKey(num), id)
}

// SaveBlock saves the block and indexes it by height.
func SaveBlock(w kv.Putter, b *block.Block) error {
	id := b.Header().ID()
	if err := Blocks.Put(w, id[:], b); err != nil {
		return err
	}
	return BlockIndex.PutID(w, b.Header().Number(), id)
}
