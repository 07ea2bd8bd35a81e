// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/instruction"
	"github.com/kwami-ai/kwamid/util"
)

func runGenerate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	if util.EnsureFileExists(m.identity) {
		return fault.KeyFileAlreadyExists
	}
	key, err := account.NewPrivateKey()
	if nil != err {
		return err
	}
	text, err := key.MarshalText()
	if nil != err {
		return err
	}
	err = ioutil.WriteFile(m.identity, text, 0600)
	if nil != err {
		os.Remove(m.identity)
		return err
	}

	return printJson(m.w, map[string]string{
		"file":     m.identity,
		"identity": key.Identity().String(),
	})
}

func runIdentity(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	key, err := loadKey(m)
	if nil != err {
		return err
	}
	fmt.Fprintf(m.w, "%s\n", key.Identity())
	return nil
}

func runInfo(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Info()
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runLogs(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	var id instruction.Id
	err := id.UnmarshalText([]byte(strings.TrimSpace(c.String("id"))))
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Logs(id)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
