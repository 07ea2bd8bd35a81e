// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/sha256"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/command/kwami-cli/rpccalls"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/record"
)

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.fingerprint, m.verbose, m.e)
}

func loadKey(m *metadata) (*account.PrivateKey, error) {
	text, err := ioutil.ReadFile(m.identity)
	if nil != err {
		return nil, err
	}
	return account.ParsePrivateKey(string(text))
}

// a required base58 identity flag
func checkIdentity(c *cli.Context, name string) (account.Identity, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return account.Null, fmt.Errorf("missing --%s", name)
	}
	id, err := account.IdentityFromBase58(s)
	if nil != err {
		return account.Null, fmt.Errorf("--%s: %q error: %s", name, s, err)
	}
	return id, nil
}

// optional identity flag, defaults to the signer
func checkIdentityOr(c *cli.Context, name string, fallback account.Identity) (account.Identity, error) {
	if "" == strings.TrimSpace(c.String(name)) {
		return fallback, nil
	}
	return checkIdentity(c, name)
}

// either a hex SHA-256 in --dna or the hash of --dna-text
func checkDna(c *cli.Context) (record.Fingerprint, error) {
	hexText := strings.TrimSpace(c.String("dna"))
	text := c.String("dna-text")

	switch {
	case "" != hexText && "" != text:
		return record.Fingerprint{}, fmt.Errorf("only one of --dna and --dna-text allowed")
	case "" != hexText:
		var fp record.Fingerprint
		err := fp.UnmarshalText([]byte(hexText))
		return fp, err
	case "" != text:
		return record.Fingerprint(sha256.Sum256([]byte(text))), nil
	default:
		return record.Fingerprint{}, fmt.Errorf("missing --dna or --dna-text")
	}
}

func checkAmount(c *cli.Context, name string) (uint64, error) {
	s := strings.TrimSpace(c.String(name))
	if "" == s {
		return 0, fmt.Errorf("missing --%s", name)
	}
	amount, err := strconv.ParseUint(s, 10, 64)
	if nil != err {
		return 0, fault.InvalidAmount
	}
	return amount, nil
}

// non-zero --nonce or the current time
func getNonce(c *cli.Context) uint64 {
	if n := c.Uint64("nonce"); 0 != n {
		return n
	}
	return uint64(time.Now().UnixNano())
}

var nonceFlag = cli.Uint64Flag{
	Name:  "nonce, n",
	Value: 0,
	Usage: " instruction `NONCE` [default current time]",
}
