// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - packed instructions and the processor that runs them
//
// An instruction is packed as Varint64(tag) followed by its fields in a
// fixed order and a trailing Varint64 nonce.  The instruction id is the
// SHA3-256 of those bytes and the same bytes are what every signer
// signs.
//
// Field encodings:
//
//   identity     32 raw bytes
//   fingerprint  32 raw bytes
//   uint64       Varint64
//   uint8        one byte
//   string       Varint64(byte count) followed by the bytes
//
// The processor locks every account an instruction writes, in sorted
// order, runs the handler against one storage transaction and commits
// only if the handler succeeds.
package instruction
