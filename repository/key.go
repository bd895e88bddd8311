// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package repository

import (
	"bytes"
	"encoding/hex"
	"strconv"

	"github.com/vechain/tvmstate/tvm"
)

// Key identifies a cache entry. Keys compare by byte content.
type Key struct {
	data string
}

// NewKey creates a key holding a copy of b.
func NewKey(b []byte) Key {
	return Key{string(b)}
}

// AddressKey is the key of entries stored by address.
func AddressKey(addr tvm.Address) Key {
	return Key{string(addr[:])}
}

// TokenKey is the key of a token id, leading zero bytes stripped.
func TokenKey(tokenID []byte) Key {
	return Key{string(stripLeadingZeros(tokenID))}
}

// BeginCycleKey is the delegation key of the address's begin cycle.
func BeginCycleKey(addr tvm.Address) Key {
	return AddressKey(addr)
}

// EndCycleKey is the delegation key of the address's end cycle.
func EndCycleKey(addr tvm.Address) Key {
	return Key{"end-" + hex.EncodeToString(addr[:])}
}

// AccountVoteKey is the delegation key of the account snapshot taken for
// voting in the cycle.
func AccountVoteKey(cycle int64, addr tvm.Address) Key {
	return Key{strconv.FormatInt(cycle, 10) + "-" + hex.EncodeToString(addr[:]) + "-account-vote"}
}

// Bytes returns a copy of the key content.
func (k Key) Bytes() []byte {
	return []byte(k.data)
}

func (k Key) String() string {
	return "0x" + hex.EncodeToString([]byte(k.data))
}

func stripLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return bytes.Clone(b[i:])
}
