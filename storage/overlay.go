// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package storage caches contract storage slots over persisted rows.
package storage

import (
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/vechain/tvmstate/kv"
	"github.com/vechain/tvmstate/store"
	"github.com/vechain/tvmstate/tvm"
)

// RowReader reads persisted storage rows.
type RowReader interface {
	GetStorageRow(rowKey []byte) (value tvm.Bytes32, found bool, err error)
}

// row is a cached storage slot. The row key is fixed when the row enters
// the overlay, later address hash changes do not move it.
type row struct {
	key   []byte
	value tvm.Bytes32
	dirty bool
}

// Overlay caches the storage slots of one contract.
// It's not thread-safe.
type Overlay struct {
	address  tvm.Address
	addrHash tvm.Bytes32
	version  int32
	rows     map[tvm.Bytes32]*row
}

// New creates an empty overlay for the contract.
func New(addr tvm.Address) *Overlay {
	return &Overlay{
		address:  addr,
		addrHash: tvm.Bytes32(crypto.Keccak256Hash(addr[:])),
		rows:     make(map[tvm.Bytes32]*row),
	}
}

// Address returns the contract address.
func (o *Overlay) Address() tvm.Address {
	return o.address
}

// ContractVersion returns the contract version.
func (o *Overlay) ContractVersion() int32 {
	return o.version
}

// SetContractVersion sets the contract version. Slots of version 1 contracts
// are hashed before composing row keys.
func (o *Overlay) SetContractVersion(v int32) {
	o.version = v
}

// AddrHash returns the hash namespacing the rows of this contract.
func (o *Overlay) AddrHash() tvm.Bytes32 {
	return o.addrHash
}

// GenerateAddrHash namespaces rows with the hash of the deploying transaction.
func (o *Overlay) GenerateAddrHash(trxHash []byte) {
	o.addrHash = tvm.Bytes32(crypto.Keccak256Hash(o.address[:], trxHash))
}

// RowKey composes the row key of the slot: addrHash[:16] + key[16:].
func (o *Overlay) RowKey(key tvm.Bytes32) []byte {
	if o.version == 1 {
		key = tvm.Bytes32(crypto.Keccak256Hash(key[:]))
	}
	rowKey := make([]byte, 32)
	copy(rowKey, o.addrHash[:16])
	copy(rowKey[16:], key[16:])
	return rowKey
}

// GetValue returns the slot value. Slots not yet cached are read through r.
// Absent slots are not cached.
func (o *Overlay) GetValue(key tvm.Bytes32, r RowReader) (tvm.Bytes32, bool, error) {
	if row, ok := o.rows[key]; ok {
		return row.value, true, nil
	}

	rowKey := o.RowKey(key)
	value, found, err := r.GetStorageRow(rowKey)
	if err != nil {
		return tvm.Bytes32{}, false, errors.Wrapf(err, "storage %v: get row", o.address)
	}
	if !found {
		return tvm.Bytes32{}, false, nil
	}
	o.rows[key] = &row{key: rowKey, value: value}
	return value, true, nil
}

// Put sets the slot value.
func (o *Overlay) Put(key, value tvm.Bytes32) {
	if row, ok := o.rows[key]; ok {
		row.value = value
		row.dirty = true
		return
	}
	o.rows[key] = &row{key: o.RowKey(key), value: value, dirty: true}
}

// Len returns the number of cached slots.
func (o *Overlay) Len() int {
	return len(o.rows)
}

// Copy returns a deep copy. The copy and o share no mutable state.
func (o *Overlay) Copy() *Overlay {
	cpy := &Overlay{
		address:  o.address,
		addrHash: o.addrHash,
		version:  o.version,
		rows:     make(map[tvm.Bytes32]*row, len(o.rows)),
	}
	for k, r := range o.rows {
		rc := *r
		rc.key = append([]byte(nil), r.key...)
		cpy.rows[k] = &rc
	}
	return cpy
}

// Flush writes dirty rows to w. Zero values delete their rows.
// It returns the number of rows written.
func (o *Overlay) Flush(w kv.Putter) (int, error) {
	n := 0
	for _, r := range o.rows {
		if !r.dirty {
			continue
		}
		if err := store.StorageRows.Put(w, r.key, r.value); err != nil {
			return n, errors.Wrapf(err, "storage %v: flush", o.address)
		}
		n++
	}
	return n, nil
}
