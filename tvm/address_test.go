// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package tvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToAddress(t *testing.T) {
	evm := make([]byte, 20)
	evm[19] = 0x01

	addr := BytesToAddress(evm)
	assert.Equal(t, AddressPrefix, addr[0])
	assert.Equal(t, byte(0x01), addr[20])

	full := append([]byte{AddressPrefix}, evm...)
	assert.Equal(t, addr, BytesToAddress(full))

	short := BytesToAddress([]byte{0x02})
	assert.Equal(t, byte(0x02), short[20])
	assert.Equal(t, byte(0), short[0])

	long := BytesToAddress(append([]byte{0xff, 0xee}, full...))
	assert.Equal(t, addr, long)
}

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x4177944d19c052b73ee2286823aa83f8138cb7032f")
	require.NoError(t, err)
	assert.Equal(t, "0x4177944d19c052b73ee2286823aa83f8138cb7032f", addr.String())

	evm, err := ParseAddress("77944d19c052b73ee2286823aa83f8138cb7032f")
	require.NoError(t, err)
	assert.Equal(t, addr, evm)

	_, err = ParseAddress("0x1234")
	assert.Error(t, err)

	_, err = ParseAddress("0xzz77944d19c052b73ee2286823aa83f8138cb7032f")
	assert.Error(t, err)
}

func TestAddressText(t *testing.T) {
	addr := MustParseAddress("0x4177944d19c052b73ee2286823aa83f8138cb7032f")
	text, err := addr.MarshalText()
	require.NoError(t, err)

	var decoded Address
	require.NoError(t, decoded.UnmarshalText(text))
	assert.Equal(t, addr, decoded)
	assert.False(t, decoded.IsZero())
}
