// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/configuration"
	"github.com/kwami-ai/kwamid/fault"
)

var (
	collectionId = account.Identity{0x01, 0x02, 0x03}
	ledgerId     = account.Identity{0x04, 0x05, 0x06}
)

const sample = `
local M = {}

M.data_directory = "."
M.pidfile = "kwamid.pid"

M.database = {
    directory = "db",
    name = "kwami",
}

M.programs = {
    collection = "%s",
    ledger = "%s",
}

M.collection = {
    reject_null_owner = true,
    capacity = 500,
}

M.ledger = {
    maximum_supply = 21000000,
}

M.client_rpc = {
    maximum_connections = 50,
    bandwidth = 30000000,
    listen = { "127.0.0.1:2130", "[::1]:2130" },
}

M.publishing = {
    broadcast = { "127.0.0.1:2135" },
}

M.logging = {
    size = 2048,
    count = 3,
    levels = {
        DEFAULT = "info",
        processor = "debug",
    },
}

return M
`

func writeConfiguration(t *testing.T, text string) (string, string) {
	dir, err := ioutil.TempDir("", "kwamid-configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "kwamid.conf")
	err = ioutil.WriteFile(fileName, []byte(text), 0600)
	if nil != err {
		t.Fatalf("write error: %s", err)
	}
	return dir, fileName
}

func TestRead(t *testing.T) {
	dir, fileName := writeConfiguration(t, fmt.Sprintf(sample, collectionId.String(), ledgerId.String()))
	defer os.RemoveAll(dir)

	c, err := configuration.Read(fileName)
	assert.Nil(t, err, "read")

	assert.Equal(t, dir, c.DataDirectory, "data directory")
	assert.Equal(t, filepath.Join(dir, "kwamid.pid"), c.PidFile, "pid file")
	assert.Equal(t, filepath.Join(dir, "db"), c.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "db", "kwami"), c.Database.Name, "database name")

	collection, ledger, err := c.Programs.Identities()
	assert.Nil(t, err, "identities")
	assert.Equal(t, collectionId, collection, "collection program")
	assert.Equal(t, ledgerId, ledger, "ledger program")

	assert.True(t, c.Collection.RejectNullOwner, "reject null owner")
	assert.Equal(t, 500, c.Collection.Capacity, "capacity")
	assert.Equal(t, uint64(21000000), c.Ledger.MaximumSupply, "maximum supply")

	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "listen")
	assert.Equal(t, filepath.Join(dir, configuration.DefaultRPCCertificateFile), c.ClientRPC.Certificate, "certificate")
	assert.Equal(t, filepath.Join(dir, configuration.DefaultRPCKeyFile), c.ClientRPC.PrivateKey, "key")

	assert.Equal(t, []string{"127.0.0.1:2135"}, c.Publishing.Broadcast, "broadcast")
	assert.Equal(t, filepath.Join(dir, configuration.DefaultPublishPublicKeyFile), c.Publishing.PublicKey, "publish public key")

	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, "kwamid.log", c.Logging.File, "log file")
	assert.Equal(t, "debug", c.Logging.Levels["processor"], "processor level")

	for _, d := range []string{c.Database.Directory, c.Logging.Directory} {
		info, err := os.Stat(d)
		assert.Nil(t, err, "stat: %s", d)
		assert.True(t, info.IsDir(), "directory: %s", d)
	}
}

func TestReadMissingPrograms(t *testing.T) {
	dir, fileName := writeConfiguration(t, `return { data_directory = "." }`)
	defer os.RemoveAll(dir)

	_, err := configuration.Read(fileName)
	assert.NotNil(t, err, "missing programs")
}

func TestReadSamePrograms(t *testing.T) {
	dir, fileName := writeConfiguration(t, fmt.Sprintf(sample, collectionId.String(), collectionId.String()))
	defer os.RemoveAll(dir)

	_, err := configuration.Read(fileName)
	assert.NotNil(t, err, "shared identity")
}

func TestReadBadDataDirectory(t *testing.T) {
	text := `return { data_directory = "", programs = { collection = "` + collectionId.String() + `", ledger = "` + ledgerId.String() + `" } }`
	dir, fileName := writeConfiguration(t, text)
	defer os.RemoveAll(dir)

	_, err := configuration.Read(fileName)
	assert.NotNil(t, err, "empty data directory")
}

func TestParseConfigurationString(t *testing.T) {
	type small struct {
		Name  string `gluamapper:"name"`
		Count int    `gluamapper:"count"`
	}

	var s small
	err := configuration.ParseConfigurationString(`return { name = "kwami", count = 3 + 4 }`, &s)
	assert.Nil(t, err, "parse")
	assert.Equal(t, small{Name: "kwami", Count: 7}, s, "mapped")

	err = configuration.ParseConfigurationString(`return 42`, &s)
	assert.Equal(t, fault.ConfigurationNotTable, err, "not a table")

	err = configuration.ParseConfigurationString(`return {}`, s)
	assert.Equal(t, fault.ConfigurationNotStruct, err, "not a pointer")

	err = configuration.ParseConfigurationString(`return {`, &s)
	assert.NotNil(t, err, "syntax error")
}
