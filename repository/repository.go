// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package repository implements the layered state cache used by contract
// execution.
//
// A repository chain mirrors nested execution: a root bound to a world state
// root, a child per block, transaction or call. Each layer reads through its
// parent and keeps its writes local until Commit hands them one level up, or
// to the persistent stores at the root. Dropping a layer without committing
// rolls it back.
package repository

import (
	"github.com/vechain/tvmstate/block"
	"github.com/vechain/tvmstate/chain"
	"github.com/vechain/tvmstate/kv"
	"github.com/vechain/tvmstate/log"
	"github.com/vechain/tvmstate/state"
	"github.com/vechain/tvmstate/storage"
	"github.com/vechain/tvmstate/tvm"
	"github.com/vechain/tvmstate/worldstate"
)

var logger = log.WithContext("pkg", "repository")

// Option configures a root repository.
type Option func(*Repository)

// WithBlockReader sets the block reader serving GetBlockByNum.
func WithBlockReader(br *chain.BlockReader) Option {
	return func(r *Repository) {
		r.blocks = br
	}
}

// WithForkPolicy overrides the storage fork policy derived from the protocol config.
func WithForkPolicy(p storage.ForkPolicy) Option {
	return func(r *Repository) {
		r.forkPolicy = p
	}
}

// Repository is one layer of a repository chain.
// It's not thread-safe. Independent chains may run in parallel.
type Repository struct {
	parent *Repository
	// query and db are held by the root only.
	query worldstate.Query
	db    kv.Store

	blocks     *chain.BlockReader
	cfg        tvm.ProtocolConfig
	forkPolicy storage.ForkPolicy
	committed  bool

	accounts           *entityCache[*state.Account]
	code               *entityCache[[]byte]
	contracts          *entityCache[*state.Contract]
	storages           map[Key]*storage.Overlay
	assetIssues        *entityCache[*state.AssetIssue]
	dynamicProps       *entityCache[[]byte]
	delegatedResources *entityCache[*state.DelegatedResource]
	votes              *entityCache[*state.Votes]
	delegation         *entityCache[[]byte]
}

func newLayer(cfg tvm.ProtocolConfig) *Repository {
	return &Repository{
		cfg:                cfg,
		forkPolicy:         storage.PolicyFor(cfg),
		accounts:           newEntityCache("account", state.AccountCodec, nilPtr[state.Account]),
		code:               newEntityCache("code", state.BytesCodec, nilBytes),
		contracts:          newEntityCache("contract", state.ContractCodec, nilPtr[state.Contract]),
		storages:           make(map[Key]*storage.Overlay),
		assetIssues:        newEntityCache("asset", state.AssetIssueCodec, nilPtr[state.AssetIssue]),
		dynamicProps:       newEntityCache("props", state.BytesCodec, nilBytes),
		delegatedResources: newEntityCache("delegated", state.DelegatedResourceCodec, nilPtr[state.DelegatedResource]),
		votes:              newEntityCache("votes", state.VotesCodec, nilPtr[state.Votes]),
		delegation:         newEntityCache("delegation", state.BytesCodec, nilBytes),
	}
}

// NewRoot creates the root layer reading the world state through query.
// Its commit writes to db.
func NewRoot(query worldstate.Query, db kv.Store, cfg tvm.ProtocolConfig, opts ...Option) *Repository {
	r := newLayer(cfg)
	r.query = query
	r.db = db
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewChild creates a layer on top of r.
func (r *Repository) NewChild() *Repository {
	child := newLayer(r.cfg)
	child.forkPolicy = r.forkPolicy
	child.blocks = r.blocks
	child.parent = r
	return child
}

// SetParent rebinds the layer onto p.
func (r *Repository) SetParent(p *Repository) {
	r.parent = p
}

// Parent returns the parent layer, nil at the root.
func (r *Repository) Parent() *Repository {
	return r.parent
}

// IsRoot reports whether r is the root layer.
func (r *Repository) IsRoot() bool {
	return r.parent == nil
}

// Config returns the protocol config.
func (r *Repository) Config() tvm.ProtocolConfig {
	return r.cfg
}

// root returns the root layer of the chain.
func (r *Repository) root() *Repository {
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// mustWritable panics if the layer has been committed.
func (r *Repository) mustWritable() {
	if r.committed {
		panic("repository: mutation after commit")
	}
}

// GetAccount returns a copy of the account, or nil if absent.
func (r *Repository) GetAccount(addr tvm.Address) (*state.Account, error) {
	return resolve(r, func(r *Repository) *entityCache[*state.Account] { return r.accounts }, AddressKey(addr),
		func(r *Repository) (*state.Account, error) { return r.query.GetAccount(addr) })
}

// GetAssetIssue returns the asset issue of the token. Leading zero bytes of
// tokenID are stripped before every lookup, the world-state query included,
// so padded and unpadded ids resolve to the same asset.
func (r *Repository) GetAssetIssue(tokenID []byte) (*state.AssetIssue, error) {
	key := TokenKey(tokenID)
	return resolve(r, func(r *Repository) *entityCache[*state.AssetIssue] { return r.assetIssues }, key,
		func(r *Repository) (*state.AssetIssue, error) { return r.query.GetAssetIssue(key.Bytes()) })
}

// GetContract returns a copy of the contract metadata.
func (r *Repository) GetContract(addr tvm.Address) (*state.Contract, error) {
	return resolve(r, func(r *Repository) *entityCache[*state.Contract] { return r.contracts }, AddressKey(addr),
		func(r *Repository) (*state.Contract, error) { return r.query.GetContract(addr) })
}

// GetCode returns the contract code.
func (r *Repository) GetCode(addr tvm.Address) ([]byte, error) {
	return resolve(r, func(r *Repository) *entityCache[[]byte] { return r.code }, AddressKey(addr),
		func(r *Repository) ([]byte, error) { return r.query.GetCode(addr) })
}

// GetDynamicProperty returns the raw dynamic property.
func (r *Repository) GetDynamicProperty(key []byte) ([]byte, error) {
	return resolve(r, func(r *Repository) *entityCache[[]byte] { return r.dynamicProps }, NewKey(key),
		func(r *Repository) ([]byte, error) { return r.query.GetDynamicProperty(key) })
}

// GetDelegatedResource returns the delegated resource record.
func (r *Repository) GetDelegatedResource(key []byte) (*state.DelegatedResource, error) {
	return resolve(r, func(r *Repository) *entityCache[*state.DelegatedResource] { return r.delegatedResources }, NewKey(key),
		func(r *Repository) (*state.DelegatedResource, error) { return r.query.GetDelegatedResource(key) })
}

// GetVotes returns the votes of the address.
func (r *Repository) GetVotes(addr tvm.Address) (*state.Votes, error) {
	return resolve(r, func(r *Repository) *entityCache[*state.Votes] { return r.votes }, AddressKey(addr),
		func(r *Repository) (*state.Votes, error) { return r.query.GetVotes(addr) })
}

// GetDelegation returns the raw delegation record.
func (r *Repository) GetDelegation(key Key) ([]byte, error) {
	return resolve(r, func(r *Repository) *entityCache[[]byte] { return r.delegation }, key,
		func(r *Repository) ([]byte, error) { return r.query.GetDelegation(key.Bytes()) })
}

// GetWitness returns the witness. Witnesses are read-only here, so it always
// goes to the world state.
func (r *Repository) GetWitness(addr tvm.Address) (*state.Witness, error) {
	w, err := r.root().query.GetWitness(addr)
	if err != nil {
		return nil, &Error{"witness", err}
	}
	return w, nil
}

// GetBeginCycle returns the first reward cycle of the address, 0 if unset.
func (r *Repository) GetBeginCycle(addr tvm.Address) (int64, error) {
	return r.getCycle(BeginCycleKey(addr), 0)
}

// GetEndCycle returns the last reward cycle of the address, -1 if unset.
func (r *Repository) GetEndCycle(addr tvm.Address) (int64, error) {
	return r.getCycle(EndCycleKey(addr), -1)
}

func (r *Repository) getCycle(key Key, def int64) (int64, error) {
	data, err := r.GetDelegation(key)
	if err != nil {
		return 0, err
	}
	if data == nil {
		return def, nil
	}
	return state.DecodeInt64(data)
}

// GetAccountVote returns the account snapshot recorded for voting in the cycle.
func (r *Repository) GetAccountVote(cycle int64, addr tvm.Address) (*state.Account, error) {
	data, err := r.GetDelegation(AccountVoteKey(cycle, addr))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}
	return state.AccountCodec.Decode(data)
}

// GetBalance returns the balance, 0 for absent accounts.
func (r *Repository) GetBalance(addr tvm.Address) (int64, error) {
	acc, err := r.GetAccount(addr)
	if err != nil || acc == nil {
		return 0, err
	}
	return acc.Balance, nil
}

// GetTokenBalance returns the token holding, 0 for absent accounts.
func (r *Repository) GetTokenBalance(addr tvm.Address, tokenID []byte) (int64, error) {
	acc, err := r.GetAccount(addr)
	if err != nil || acc == nil {
		return 0, err
	}
	return acc.AssetV2(string(stripLeadingZeros(tokenID))), nil
}

// GetBlackHoleAddress returns the address receiving burnt balance.
func (r *Repository) GetBlackHoleAddress() tvm.Address {
	return r.cfg.BlackHoleAddress
}

// GetBlockByNum returns the block at the height.
func (r *Repository) GetBlockByNum(num uint64) (*block.Block, error) {
	if r.blocks == nil {
		return nil, ErrNoBlockReader
	}
	return r.blocks.GetBlockByNum(num)
}
