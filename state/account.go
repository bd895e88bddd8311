// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

import (
	"io"
	"maps"
	"slices"
	"sort"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/pkg/errors"

	"github.com/vechain/tvmstate/tvm"
)

// AccountType is the kind of an account.
type AccountType int32

// Account types.
const (
	AccountNormal AccountType = iota
	AccountAssetIssue
	AccountContract
)

func (t AccountType) String() string {
	switch t {
	case AccountNormal:
		return "Normal"
	case AccountAssetIssue:
		return "AssetIssue"
	case AccountContract:
		return "Contract"
	}
	return "Unknown"
}

var (
	// ErrAssetOverflow is returned when adding to a token holding overflows.
	ErrAssetOverflow = errors.New("asset amount overflow")
	// ErrAssetInsufficient is returned when reducing a token holding below zero.
	ErrAssetInsufficient = errors.New("asset amount insufficient")
)

// Account is the state of an account.
type Account struct {
	Address    tvm.Address
	Type       AccountType
	Name       []byte
	Balance    int64
	CreateTime int64
	// AssetsV2 maps token id to holding.
	AssetsV2 map[string]int64

	FrozenForBandwidth                  int64
	FrozenForEnergy                     int64
	AcquiredDelegatedFrozenForBandwidth int64
	AcquiredDelegatedFrozenForEnergy    int64
	DelegatedFrozenForBandwidth         int64
	DelegatedFrozenForEnergy            int64

	NetUsage                   int64
	LatestConsumeTime          int64
	EnergyUsage                int64
	LatestConsumeTimeForEnergy int64

	OwnerPermission   *Permission
	ActivePermissions []*Permission
}

// NewAccount creates an account with zero balance.
func NewAccount(addr tvm.Address, typ AccountType) *Account {
	return &Account{Address: addr, Type: typ}
}

// NewAccountWithName creates a named account with zero balance.
func NewAccountWithName(addr tvm.Address, name string, typ AccountType) *Account {
	acc := NewAccount(addr, typ)
	if name != "" {
		acc.Name = []byte(name)
	}
	return acc
}

// AllFrozenBalanceForEnergy returns own and acquired frozen balance for energy.
func (a *Account) AllFrozenBalanceForEnergy() int64 {
	return a.FrozenForEnergy + a.AcquiredDelegatedFrozenForEnergy
}

// AllFrozenBalanceForBandwidth returns own and acquired frozen balance for bandwidth.
func (a *Account) AllFrozenBalanceForBandwidth() int64 {
	return a.FrozenForBandwidth + a.AcquiredDelegatedFrozenForBandwidth
}

// AssetV2 returns the holding of the token.
func (a *Account) AssetV2(tokenID string) int64 {
	return a.AssetsV2[tokenID]
}

// AddAssetAmountV2 increases the holding of the token.
func (a *Account) AddAssetAmountV2(tokenID string, amount int64) error {
	sum, ok := tvm.SafeAdd(a.AssetsV2[tokenID], amount)
	if !ok {
		return errors.Wrapf(ErrAssetOverflow, "token %q", tokenID)
	}
	if a.AssetsV2 == nil {
		a.AssetsV2 = make(map[string]int64)
	}
	a.AssetsV2[tokenID] = sum
	return nil
}

// ReduceAssetAmountV2 decreases the holding of the token.
func (a *Account) ReduceAssetAmountV2(tokenID string, amount int64) error {
	current := a.AssetsV2[tokenID]
	if amount > current {
		return errors.Wrapf(ErrAssetInsufficient, "token %q: have %d, want %d", tokenID, current, amount)
	}
	if a.AssetsV2 == nil {
		a.AssetsV2 = make(map[string]int64)
	}
	a.AssetsV2[tokenID] = current - amount
	return nil
}

// Copy returns a deep copy.
func (a *Account) Copy() *Account {
	cpy := *a
	cpy.Name = slices.Clone(a.Name)
	cpy.AssetsV2 = maps.Clone(a.AssetsV2)
	if a.OwnerPermission != nil {
		cpy.OwnerPermission = a.OwnerPermission.Copy()
	}
	if a.ActivePermissions != nil {
		cpy.ActivePermissions = make([]*Permission, len(a.ActivePermissions))
		for i, p := range a.ActivePermissions {
			cpy.ActivePermissions[i] = p.Copy()
		}
	}
	return &cpy
}

type assetEntry struct {
	TokenID string
	Amount  uint64
}

type accountRLP struct {
	Address    tvm.Address
	Type       uint64
	Name       []byte
	Balance    uint64
	CreateTime uint64
	Assets     []assetEntry

	FrozenForBandwidth                  uint64
	FrozenForEnergy                     uint64
	AcquiredDelegatedFrozenForBandwidth uint64
	AcquiredDelegatedFrozenForEnergy    uint64
	DelegatedFrozenForBandwidth         uint64
	DelegatedFrozenForEnergy            uint64

	NetUsage                   uint64
	LatestConsumeTime          uint64
	EnergyUsage                uint64
	LatestConsumeTimeForEnergy uint64

	// zero or one element
	Owner   []*Permission
	Actives []*Permission
}

// EncodeRLP implements rlp.Encoder.
func (a *Account) EncodeRLP(w io.Writer) error {
	assets := make([]assetEntry, 0, len(a.AssetsV2))
	for id, amount := range a.AssetsV2 {
		assets = append(assets, assetEntry{id, uint64(amount)})
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].TokenID < assets[j].TokenID })

	var owner []*Permission
	if a.OwnerPermission != nil {
		owner = []*Permission{a.OwnerPermission}
	}

	return rlp.Encode(w, &accountRLP{
		Address:    a.Address,
		Type:       uint64(a.Type),
		Name:       a.Name,
		Balance:    uint64(a.Balance),
		CreateTime: uint64(a.CreateTime),
		Assets:     assets,

		FrozenForBandwidth:                  uint64(a.FrozenForBandwidth),
		FrozenForEnergy:                     uint64(a.FrozenForEnergy),
		AcquiredDelegatedFrozenForBandwidth: uint64(a.AcquiredDelegatedFrozenForBandwidth),
		AcquiredDelegatedFrozenForEnergy:    uint64(a.AcquiredDelegatedFrozenForEnergy),
		DelegatedFrozenForBandwidth:         uint64(a.DelegatedFrozenForBandwidth),
		DelegatedFrozenForEnergy:            uint64(a.DelegatedFrozenForEnergy),

		NetUsage:                   uint64(a.NetUsage),
		LatestConsumeTime:          uint64(a.LatestConsumeTime),
		EnergyUsage:                uint64(a.EnergyUsage),
		LatestConsumeTimeForEnergy: uint64(a.LatestConsumeTimeForEnergy),

		Owner:   owner,
		Actives: a.ActivePermissions,
	})
}

// DecodeRLP implements rlp.Decoder.
func (a *Account) DecodeRLP(s *rlp.Stream) error {
	var obj accountRLP
	if err := s.Decode(&obj); err != nil {
		return err
	}
	if len(obj.Owner) > 1 {
		return errors.New("account: more than one owner permission")
	}

	var assets map[string]int64
	if len(obj.Assets) > 0 {
		assets = make(map[string]int64, len(obj.Assets))
		for _, e := range obj.Assets {
			assets[e.TokenID] = int64(e.Amount)
		}
	}

	var owner *Permission
	if len(obj.Owner) == 1 {
		owner = obj.Owner[0]
	}
	var actives []*Permission
	if len(obj.Actives) > 0 {
		actives = obj.Actives
	}

	*a = Account{
		Address:    obj.Address,
		Type:       AccountType(int32(obj.Type)),
		Name:       nilIfEmpty(obj.Name),
		Balance:    int64(obj.Balance),
		CreateTime: int64(obj.CreateTime),
		AssetsV2:   assets,

		FrozenForBandwidth:                  int64(obj.FrozenForBandwidth),
		FrozenForEnergy:                     int64(obj.FrozenForEnergy),
		AcquiredDelegatedFrozenForBandwidth: int64(obj.AcquiredDelegatedFrozenForBandwidth),
		AcquiredDelegatedFrozenForEnergy:    int64(obj.AcquiredDelegatedFrozenForEnergy),
		DelegatedFrozenForBandwidth:         int64(obj.DelegatedFrozenForBandwidth),
		DelegatedFrozenForEnergy:            int64(obj.DelegatedFrozenForEnergy),

		NetUsage:                   int64(obj.NetUsage),
		LatestConsumeTime:          int64(obj.LatestConsumeTime),
		EnergyUsage:                int64(obj.EnergyUsage),
		LatestConsumeTimeForEnergy: int64(obj.LatestConsumeTimeForEnergy),

		OwnerPermission:   owner,
		ActivePermissions: actives,
	}
	return nil
}

func nilIfEmpty(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	return b
}
