// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - persisted account layouts
//
// every account begins with an eight byte discriminator followed by
// its fields in declaration order:
//
//   identities and fingerprints  32 raw bytes
//   integers                     little endian, fixed width
//   strings                      u32 length ++ bytes
//   vectors                      u32 count ++ items
//
// fixed size accounts are zero padded to their full size so a record
// can grow up to its bounds without being reallocated.
package record
