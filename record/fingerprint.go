// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"
	"fmt"

	"github.com/kwami-ai/kwamid/fault"
)

// FingerprintLength - bytes in a DNA hash
const FingerprintLength = 32

// Fingerprint - the DNA hash of an asset
// represented as hex text for JSON encoding
type Fingerprint [FingerprintLength]byte

// FingerprintFromBytes - convert and validate a binary byte slice
func FingerprintFromBytes(buffer []byte) (Fingerprint, error) {
	fp := Fingerprint{}
	if FingerprintLength != len(buffer) {
		return fp, fault.InvalidFingerprint
	}
	copy(fp[:], buffer)
	return fp, nil
}

// String - hex text for the fmt package (for %s)
func (fp Fingerprint) String() string {
	return hex.EncodeToString(fp[:])
}

// GoString - hex text for the fmt package (for %#v)
func (fp Fingerprint) GoString() string {
	return "<dna:" + hex.EncodeToString(fp[:]) + ">"
}

// Scan - read hex text for the fmt scan routines
func (fp *Fingerprint) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return fp.UnmarshalText(token)
}

// MarshalText - convert to hex text
func (fp Fingerprint) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(fp))
	buffer := make([]byte, size)
	hex.Encode(buffer, fp[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a fingerprint
func (fp *Fingerprint) UnmarshalText(s []byte) error {
	if len(fp) != hex.DecodedLen(len(s)) {
		return fault.InvalidFingerprint
	}
	byteCount, err := hex.Decode(fp[:], s)
	if nil != err {
		return fault.InvalidFingerprint
	}
	if FingerprintLength != byteCount {
		return fault.InvalidFingerprint
	}
	return nil
}
