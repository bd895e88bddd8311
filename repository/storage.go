// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package repository

import (
	"github.com/vechain/tvmstate/storage"
	"github.com/vechain/tvmstate/tvm"
)

// GetStorage resolves the storage overlay of the contract without caching it.
//
// A layer that does not hold the overlay gets what the fork policy makes of
// the one its parent resolves: the parent's instance itself (Shared) or a
// deep copy (ForkCopy). Only layers that already hold an overlay share it,
// so writes through a Shared overlay show in those layers before commit and
// never in one that has not touched the contract.
func (r *Repository) GetStorage(addr tvm.Address) (*storage.Overlay, error) {
	if o, ok := r.storages[AddressKey(addr)]; ok {
		return o, nil
	}

	var o *storage.Overlay
	if r.parent != nil {
		po, err := r.parent.GetStorage(addr)
		if err != nil {
			return nil, err
		}
		o = r.forkPolicy.Fork(po)
	} else {
		o = storage.New(addr)
	}

	contract, err := r.GetContract(addr)
	if err != nil {
		return nil, err
	}
	if contract != nil {
		o.SetContractVersion(contract.Version)
		if len(contract.TrxHash) > 0 {
			o.GenerateAddrHash(contract.TrxHash)
		}
	}
	return o, nil
}

// storageOf returns the overlay of an existing account, cached in this layer
// only. It is nil if the account is absent.
func (r *Repository) storageOf(addr tvm.Address) (*storage.Overlay, error) {
	acc, err := r.GetAccount(addr)
	if err != nil || acc == nil {
		return nil, err
	}
	key := AddressKey(addr)
	if o, ok := r.storages[key]; ok {
		return o, nil
	}
	o, err := r.GetStorage(addr)
	if err != nil {
		return nil, err
	}
	r.storages[key] = o
	return o, nil
}

// GetStorageValue returns the value of the storage slot. found is false for
// unset slots and absent accounts.
func (r *Repository) GetStorageValue(addr tvm.Address, key tvm.Bytes32) (value tvm.Bytes32, found bool, err error) {
	o, err := r.storageOf(addr)
	if err != nil || o == nil {
		return tvm.Bytes32{}, false, err
	}
	return o.GetValue(key, r.root().query)
}

// PutStorageValue sets the value of the storage slot. It does nothing if the
// account is absent.
func (r *Repository) PutStorageValue(addr tvm.Address, key, value tvm.Bytes32) error {
	r.mustWritable()
	o, err := r.storageOf(addr)
	if err != nil || o == nil {
		return err
	}
	o.Put(key, value)
	return nil
}

// PutStorage merges a committed storage overlay.
func (r *Repository) PutStorage(key Key, o *storage.Overlay) {
	r.mustWritable()
	r.storages[key] = o
}
