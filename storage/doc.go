// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - LevelDB backed pools
//
// each pool is a single byte key prefix within one of two databases:
//
//   state - program accounts, token mints, balances, metadata and the
//           list of executed instruction ids
//   index - log lines of executed instructions, keyed by id
//
// all mutation goes through a Transaction: writes are collected in one
// batch per database and are visible to reads of the same transaction
// through a memory overlay.  Nothing reaches the database until Commit.
package storage
