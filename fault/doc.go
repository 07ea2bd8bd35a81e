// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Every instruction failure is exactly one of these instances, the
// class of the instance gives the broad kind:
//
//   validation:    InvalidError, LengthError
//   invariant:     ExistsError, OverflowError
//   authorization: PermissionError
//   lookup:        NotFoundError
//   runtime:       ProcessError
package fault
