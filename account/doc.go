// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - identities, private keys and signatures
//
// an identity is a 32 byte ed25519 public key or a derived address,
// its text form is plain Base58 with no checksum.  The all-zero
// identity is the null identity and never denotes a real party.
package account
