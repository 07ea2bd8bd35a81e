// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/kwami-ai/kwamid/fault"
)

// IdentityLength - bytes in an identity
const IdentityLength = 32

// Identity - a public key or a derived address
type Identity [IdentityLength]byte

// Null - the default identity
var Null = Identity{}

// IdentityFromBytes - convert and validate a binary byte slice
func IdentityFromBytes(buffer []byte) (Identity, error) {
	identity := Identity{}
	if IdentityLength != len(buffer) {
		return identity, fault.InvalidIdentity
	}
	copy(identity[:], buffer)
	return identity, nil
}

// IdentityFromBase58 - decode the text form of an identity
func IdentityFromBase58(s string) (Identity, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Identity{}, fault.InvalidIdentity
	}
	return IdentityFromBytes(buffer)
}

// IsNull - true for the all-zero identity
func (identity Identity) IsNull() bool {
	return identity == Null
}

// Bytes - binary form
func (identity Identity) Bytes() []byte {
	return identity[:]
}

// Compare - byte order, used to sort addresses for locking
func (identity Identity) Compare(other Identity) int {
	return bytes.Compare(identity[:], other[:])
}

// String - Base58 text for the fmt package (for %s)
func (identity Identity) String() string {
	return base58.Encode(identity[:])
}

// GoString - for the fmt package (for %#v)
func (identity Identity) GoString() string {
	return "<identity:" + hex.EncodeToString(identity[:]) + ">"
}

// Scan - read Base58 text for the fmt scan routines
func (identity *Identity) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, isBase58)
	if nil != err {
		return err
	}
	id, err := IdentityFromBase58(string(token))
	if nil != err {
		return err
	}
	*identity = id
	return nil
}

// MarshalText - Base58 text for JSON
func (identity Identity) MarshalText() ([]byte, error) {
	return []byte(identity.String()), nil
}

// UnmarshalText - Base58 text from JSON
func (identity *Identity) UnmarshalText(s []byte) error {
	id, err := IdentityFromBase58(string(s))
	if nil != err {
		return err
	}
	*identity = id
	return nil
}

func isBase58(c rune) bool {
	switch {
	case c >= '1' && c <= '9':
		return true
	case c >= 'A' && c <= 'H', c >= 'J' && c <= 'N', c >= 'P' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'k', c >= 'm' && c <= 'z':
		return true
	}
	return false
}
