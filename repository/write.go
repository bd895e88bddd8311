// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package repository

import (
	"math"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"

	"github.com/vechain/tvmstate/state"
	"github.com/vechain/tvmstate/tvm"
)

// CreateAccount creates an account in the layer.
func (r *Repository) CreateAccount(addr tvm.Address, typ state.AccountType) *state.Account {
	r.mustWritable()
	acc := state.NewAccount(addr, typ)
	r.accounts.put(AddressKey(addr), acc, Create)
	return acc
}

// CreateAccountWithName creates a named account in the layer.
func (r *Repository) CreateAccountWithName(addr tvm.Address, name string, typ state.AccountType) *state.Account {
	r.mustWritable()
	acc := state.NewAccountWithName(addr, name, typ)
	r.accounts.put(AddressKey(addr), acc, Create)
	return acc
}

// CreateNormalAccount creates a normal account stamped with the latest block
// time. Owner and active permissions are granted when multi-sign is allowed.
func (r *Repository) CreateNormalAccount(addr tvm.Address) (*state.Account, error) {
	r.mustWritable()
	createTime, err := r.getInt64Property(tvm.KeyLatestBlockHeaderTime)
	if err != nil {
		return nil, err
	}

	acc := state.NewAccount(addr, state.AccountNormal)
	acc.CreateTime = createTime
	if r.cfg.AllowMultiSign {
		ops, err := r.GetDynamicProperty(tvm.KeyActiveDefaultOperations)
		if err != nil {
			return nil, err
		}
		acc.OwnerPermission = state.NewDefaultOwnerPermission(addr)
		acc.ActivePermissions = []*state.Permission{state.NewDefaultActivePermission(addr, ops)}
	}
	r.accounts.put(AddressKey(addr), acc, Create)
	return acc, nil
}

// UpdateAccount saves a modified account.
func (r *Repository) UpdateAccount(addr tvm.Address, acc *state.Account) {
	r.mustWritable()
	r.accounts.update(AddressKey(addr), acc)
}

// PutAccountValue saves the account as created in the layer.
func (r *Repository) PutAccountValue(addr tvm.Address, acc *state.Account) {
	r.mustWritable()
	r.accounts.put(AddressKey(addr), acc, Create)
}

// CreateContract saves the metadata of a new contract.
func (r *Repository) CreateContract(addr tvm.Address, c *state.Contract) {
	r.mustWritable()
	r.contracts.put(AddressKey(addr), c, Create)
}

// UpdateContract saves modified contract metadata.
func (r *Repository) UpdateContract(addr tvm.Address, c *state.Contract) {
	r.mustWritable()
	r.contracts.update(AddressKey(addr), c)
}

// DeleteContract does nothing. Contracts are never removed from state.
func (r *Repository) DeleteContract(addr tvm.Address) {
	r.mustWritable()
}

// SaveCode saves the contract code. Once Constantinople is active the
// contract's code hash follows the code.
func (r *Repository) SaveCode(addr tvm.Address, code []byte) error {
	r.mustWritable()
	if !r.cfg.AllowTvmConstantinople {
		r.code.put(AddressKey(addr), code, Create)
		return nil
	}

	contract, err := r.GetContract(addr)
	if err != nil {
		return err
	}
	if contract == nil {
		return errors.Errorf("save code: contract %v not found", addr)
	}
	r.code.put(AddressKey(addr), code, Create)
	contract.CodeHash = tvm.Bytes32(crypto.Keccak256Hash(code))
	r.UpdateContract(addr, contract)
	return nil
}

// UpdateDynamicProperty saves a raw dynamic property.
func (r *Repository) UpdateDynamicProperty(key, value []byte) {
	r.mustWritable()
	r.dynamicProps.update(NewKey(key), value)
}

// UpdateDelegatedResource saves a delegated resource record.
func (r *Repository) UpdateDelegatedResource(key []byte, dr *state.DelegatedResource) {
	r.mustWritable()
	r.delegatedResources.update(NewKey(key), dr)
}

// UpdateVotes saves the votes of the address.
func (r *Repository) UpdateVotes(addr tvm.Address, v *state.Votes) {
	r.mustWritable()
	r.votes.update(AddressKey(addr), v)
}

// UpdateBeginCycle saves the first reward cycle of the address.
func (r *Repository) UpdateBeginCycle(addr tvm.Address, cycle int64) {
	r.UpdateDelegation(BeginCycleKey(addr), state.EncodeInt64(cycle))
}

// UpdateEndCycle saves the last reward cycle of the address.
func (r *Repository) UpdateEndCycle(addr tvm.Address, cycle int64) {
	r.UpdateDelegation(EndCycleKey(addr), state.EncodeInt64(cycle))
}

// UpdateAccountVote records the account snapshot for voting in the cycle.
func (r *Repository) UpdateAccountVote(addr tvm.Address, cycle int64, acc *state.Account) error {
	data, err := state.AccountCodec.Encode(acc)
	if err != nil {
		return errors.Wrap(err, "encode account vote")
	}
	r.UpdateDelegation(AccountVoteKey(cycle, addr), data)
	return nil
}

// UpdateDelegation saves a raw delegation record.
func (r *Repository) UpdateDelegation(key Key, value []byte) {
	r.mustWritable()
	r.delegation.update(key, value)
}

// accountForWrite returns the account, created as a normal account in the
// layer if absent.
func (r *Repository) accountForWrite(addr tvm.Address) (*state.Account, error) {
	acc, err := r.GetAccount(addr)
	if err != nil {
		return nil, err
	}
	if acc == nil {
		acc = r.CreateAccount(addr, state.AccountNormal)
	}
	return acc, nil
}

// AddBalance adds delta to the balance and returns the new balance.
// A negative delta exceeding the balance fails with a *BalanceError.
func (r *Repository) AddBalance(addr tvm.Address, delta int64) (int64, error) {
	r.mustWritable()
	acc, err := r.accountForWrite(addr)
	if err != nil {
		return 0, err
	}
	if delta == 0 {
		return acc.Balance, nil
	}
	if delta < 0 && (delta == math.MinInt64 || acc.Balance < -delta) {
		return acc.Balance, &BalanceError{Address: addr, Balance: acc.Balance, Delta: delta}
	}
	balance, ok := tvm.SafeAdd(acc.Balance, delta)
	if !ok {
		return acc.Balance, errors.Wrapf(ErrBalanceOverflow, "%v: balance %d, delta %d", addr, acc.Balance, delta)
	}
	acc.Balance = balance
	r.accounts.update(AddressKey(addr), acc)
	return balance, nil
}

// AddTokenBalance adds delta to the token holding and returns the new holding.
// Leading zero bytes of the token id are ignored.
func (r *Repository) AddTokenBalance(addr tvm.Address, tokenID []byte, delta int64) (int64, error) {
	r.mustWritable()
	token := string(stripLeadingZeros(tokenID))
	acc, err := r.accountForWrite(addr)
	if err != nil {
		return 0, err
	}
	holding := acc.AssetV2(token)
	if delta == 0 {
		return holding, nil
	}
	if delta < 0 && (delta == math.MinInt64 || holding < -delta) {
		return holding, &BalanceError{Address: addr, Token: token, Balance: holding, Delta: delta}
	}
	if delta > 0 {
		if err := acc.AddAssetAmountV2(token, delta); err != nil {
			return holding, errors.Wrapf(ErrBalanceOverflow, "%v: %v", addr, err)
		}
	} else {
		if err := acc.ReduceAssetAmountV2(token, -delta); err != nil {
			return holding, errors.Wrapf(err, "%v", addr)
		}
	}
	r.accounts.update(AddressKey(addr), acc)
	return acc.AssetV2(token), nil
}

// PutAccount merges a committed account entry.
func (r *Repository) PutAccount(key Key, v *Value[*state.Account]) {
	r.mustWritable()
	r.accounts.merge(key, v)
}

// PutCode merges a committed code entry.
func (r *Repository) PutCode(key Key, v *Value[[]byte]) {
	r.mustWritable()
	r.code.merge(key, v)
}

// PutContract merges a committed contract entry.
func (r *Repository) PutContract(key Key, v *Value[*state.Contract]) {
	r.mustWritable()
	r.contracts.merge(key, v)
}

// PutDynamicProperty merges a committed dynamic property entry.
func (r *Repository) PutDynamicProperty(key Key, v *Value[[]byte]) {
	r.mustWritable()
	r.dynamicProps.merge(key, v)
}

// PutDelegatedResource merges a committed delegated resource entry.
func (r *Repository) PutDelegatedResource(key Key, v *Value[*state.DelegatedResource]) {
	r.mustWritable()
	r.delegatedResources.merge(key, v)
}

// PutVotes merges a committed votes entry.
func (r *Repository) PutVotes(key Key, v *Value[*state.Votes]) {
	r.mustWritable()
	r.votes.merge(key, v)
}

// PutDelegation merges a committed delegation entry.
func (r *Repository) PutDelegation(key Key, v *Value[[]byte]) {
	r.mustWritable()
	r.delegation.merge(key, v)
}
