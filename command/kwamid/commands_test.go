// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/configuration"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/ledger"
)

var (
	collectionProgram = account.Identity{0x4b}
	ledgerProgram     = account.Identity{0x51}
	testMint          = account.Identity{0x77}
)

func testConfiguration() *configuration.Configuration {
	c := configuration.New()
	c.Programs.Collection = collectionProgram.String()
	c.Programs.Ledger = ledgerProgram.String()
	return c
}

func TestMakeIdentity(t *testing.T) {
	dir, err := ioutil.TempDir("", "kwamid-identity")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, identityFilename)
	identity, err := makeIdentity(fileName)
	assert.Nil(t, err, "make")

	text, err := ioutil.ReadFile(fileName)
	assert.Nil(t, err, "read back")
	key, err := account.ParsePrivateKey(string(text))
	assert.Nil(t, err, "parse")
	assert.Equal(t, identity, key.Identity(), "identity")

	_, err = makeIdentity(fileName)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "existing file")
}

func TestProgramAddresses(t *testing.T) {
	options := testConfiguration()

	c, err := collection.New(collectionProgram, nil, nil, nil)
	assert.Nil(t, err, "collection")
	authority, bump, err := c.AuthorityAddress(testMint)
	assert.Nil(t, err, "authority address")

	var out bytes.Buffer
	err = programAddresses(&out, options, "collection", testMint.String())
	assert.Nil(t, err, "collection addresses")
	assert.True(t, strings.Contains(out.String(), authority.String()), "authority in output")
	assert.True(t, strings.Contains(out.String(), "bump: "+strconv.Itoa(int(bump))), "bump in output")

	ledgerAuthority, _, err := ledger.New(ledgerProgram, nil, nil).AuthorityAddress(testMint)
	assert.Nil(t, err, "ledger address")

	out.Reset()
	err = programAddresses(&out, options, "ledger", testMint.String())
	assert.Nil(t, err, "ledger addresses")
	assert.True(t, strings.Contains(out.String(), ledgerAuthority.String()), "ledger authority in output")

	err = programAddresses(&out, options, "token", testMint.String())
	assert.NotNil(t, err, "unknown kind")

	err = programAddresses(&out, options, "asset", "0OIl")
	assert.NotNil(t, err, "bad mint")
}

func TestDumpConfiguration(t *testing.T) {
	var out bytes.Buffer
	err := dumpConfiguration(&out, testConfiguration())
	assert.Nil(t, err, "dump")

	var decoded map[string]interface{}
	err = json.Unmarshal(out.Bytes(), &decoded)
	assert.Nil(t, err, "valid JSON")
	assert.Contains(t, decoded, "programs", "programs section")
	assert.Contains(t, decoded, "client_rpc", "rpc section")
}
