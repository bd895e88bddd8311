// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package state defines the entities held by the state layer and their codecs.
//
// Every entity is RLP encoded. Signed integer fields are stored as their
// two's-complement uint64 form, so negative values survive a round trip.
// Map fields are encoded as key-sorted lists to keep the encoding canonical.
package state
