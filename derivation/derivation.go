// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation - deterministic addresses with no private key
//
// an address is the SHA3-256 of the seeds, one bump byte, the program
// identity and a fixed marker.  Only results that do not decode as an
// ed25519 point are valid, so no private key can ever exist for them
// and the program alone can act for the address by presenting the
// seeds again.
package derivation

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/fault"
)

// limits on the seed list
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

const addressMarker = "ProgramDerivedAddress"

// CreateAddress - derive the address for seeds and an explicit bump
func CreateAddress(seeds [][]byte, bump uint8, program account.Identity) (account.Identity, error) {
	if 0 == len(seeds) {
		return account.Null, fault.NoSeeds
	}
	if len(seeds) >= MaxSeeds {
		return account.Null, fault.TooManySeeds
	}

	h := sha3.New256()
	for _, s := range seeds {
		if len(s) > MaxSeedLength {
			return account.Null, fault.SeedTooLong
		}
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write(program[:])
	h.Write([]byte(addressMarker))

	address := account.Identity{}
	copy(address[:], h.Sum(nil))

	if IsOnCurve(address[:]) {
		return account.Null, fault.NotOffCurve
	}
	return address, nil
}

// FindAddress - search bumps downwards from 255 for the canonical address
func FindAddress(seeds [][]byte, program account.Identity) (account.Identity, uint8, error) {
	for bump := 255; bump >= 0; bump -= 1 {
		address, err := CreateAddress(seeds, uint8(bump), program)
		if nil == err {
			return address, uint8(bump), nil
		}
		if fault.NotOffCurve != err {
			return account.Null, 0, err
		}
	}
	return account.Null, 0, fault.InvalidBump
}

// IsOnCurve - true if the bytes decode as an ed25519 point
func IsOnCurve(buffer []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(buffer)
	return nil == err
}
