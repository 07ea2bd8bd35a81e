// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/kwami-ai/kwamid/fault"
)

var (
	ErrExistsOne     = fault.ExistsError("exists one ")
	ErrInvalidOne    = fault.InvalidError("invalid one")
	ErrLengthOne     = fault.LengthError("length one")
	ErrNotFoundOne   = fault.NotFoundError("not found one")
	ErrOverflowOne   = fault.OverflowError("overflow one")
	ErrPermissionOne = fault.PermissionError("permission one")
	ErrProcessOne    = fault.ProcessError("process one")
)

// test that the various error classes can be distinguished
func TestClasses(t *testing.T) {
	errorList := []struct {
		err        error
		exists     bool
		invalid    bool
		length     bool
		notFound   bool
		overflow   bool
		permission bool
		process    bool
	}{
		{ErrExistsOne, true, false, false, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false, false, false},
		{ErrLengthOne, false, false, true, false, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false, false},
		{ErrOverflowOne, false, false, false, false, true, false, false},
		{ErrPermissionOne, false, false, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrOverflow(err) != e.overflow {
			t.Errorf("%d: expected 'overflow' == %v for err = %v", i, e.overflow, err)
		}
		if fault.IsErrPermission(err) != e.permission {
			t.Errorf("%d: expected 'permission' == %v for err = %v", i, e.permission, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// each instruction failure falls in exactly one broad kind
func TestKinds(t *testing.T) {
	validation := []error{
		fault.NameTooLong,
		fault.SymbolTooLong,
		fault.UriTooLong,
		fault.InvalidPrice,
		fault.InvalidAuthority,
	}
	invariant := []error{
		fault.DuplicateDNA,
		fault.RegistryFull,
		fault.MaxSupplyExceeded,
		fault.MathOverflow,
	}
	authorization := []error{
		fault.InvalidOwner,
		fault.Unauthorized,
		fault.MissingSignature,
		fault.InvalidSignature,
		fault.WrongCollection,
	}

	for i, err := range validation {
		if !fault.IsValidation(err) || fault.IsInvariant(err) || fault.IsAuthorization(err) {
			t.Errorf("%d: %q is not only a validation failure", i, err)
		}
	}
	for i, err := range invariant {
		if fault.IsValidation(err) || !fault.IsInvariant(err) || fault.IsAuthorization(err) {
			t.Errorf("%d: %q is not only an invariant failure", i, err)
		}
	}
	for i, err := range authorization {
		if fault.IsValidation(err) || fault.IsInvariant(err) || !fault.IsAuthorization(err) {
			t.Errorf("%d: %q is not only an authorization failure", i, err)
		}
	}
}
