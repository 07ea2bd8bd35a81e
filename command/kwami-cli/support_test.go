// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/sha256"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/record"
)

func context(t *testing.T, arguments ...string) *cli.Context {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.String("owner", "", "")
	set.String("dna", "", "")
	set.String("dna-text", "", "")
	set.String("amount", "", "")
	set.Uint64("nonce", 0, "")
	err := set.Parse(arguments)
	if nil != err {
		t.Fatalf("parse error: %s", err)
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func TestCheckIdentity(t *testing.T) {
	owner := account.Identity{0x10, 0x20}

	id, err := checkIdentity(context(t, "--owner", owner.String()), "owner")
	assert.Nil(t, err, "valid")
	assert.Equal(t, owner, id, "decoded")

	_, err = checkIdentity(context(t), "owner")
	assert.NotNil(t, err, "missing")

	fallback := account.Identity{0x01}
	id, err = checkIdentityOr(context(t), "owner", fallback)
	assert.Nil(t, err, "fallback")
	assert.Equal(t, fallback, id, "fallback identity")
}

func TestCheckDna(t *testing.T) {
	expected := record.Fingerprint(sha256.Sum256([]byte("blue eyes")))

	fp, err := checkDna(context(t, "--dna-text", "blue eyes"))
	assert.Nil(t, err, "text")
	assert.Equal(t, expected, fp, "hashed")

	fp, err = checkDna(context(t, "--dna", expected.String()))
	assert.Nil(t, err, "hex")
	assert.Equal(t, expected, fp, "decoded")

	_, err = checkDna(context(t, "--dna", strings.Repeat("ab", 31)))
	assert.Equal(t, fault.InvalidFingerprint, err, "short hex")

	_, err = checkDna(context(t, "--dna", expected.String(), "--dna-text", "x"))
	assert.NotNil(t, err, "both")

	_, err = checkDna(context(t))
	assert.NotNil(t, err, "neither")
}

func TestCheckAmount(t *testing.T) {
	amount, err := checkAmount(context(t, "--amount", "1000000000"), "amount")
	assert.Nil(t, err, "valid")
	assert.Equal(t, uint64(1000000000), amount, "parsed")

	_, err = checkAmount(context(t, "--amount", "-5"), "amount")
	assert.Equal(t, fault.InvalidAmount, err, "negative")

	_, err = checkAmount(context(t, "--amount", "18446744073709551616"), "amount")
	assert.Equal(t, fault.InvalidAmount, err, "overflow")
}

func TestNonce(t *testing.T) {
	assert.Equal(t, uint64(42), getNonce(context(t, "--nonce", "42")), "explicit")
	assert.NotEqual(t, uint64(0), getNonce(context(t)), "time based")
}
