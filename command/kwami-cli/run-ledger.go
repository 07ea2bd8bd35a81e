// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/ledger"
)

func runLedgerInitialise(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkIdentity(c, "mint")
	if nil != err {
		return err
	}

	client, key, err := session(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.Info()
	if nil != err {
		return err
	}
	_, bump, err := ledger.New(info.Programs.Ledger, nil, nil).AuthorityAddress(mint)
	if nil != err {
		return err
	}

	return submitAndPrint(m, client, &ledger.InitialiseArguments{
		Authority: key.Identity(),
		Mint:      mint,
		Bump:      bump,
	}, getNonce(c), key)
}

func runMintTokens(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkIdentity(c, "mint")
	if nil != err {
		return err
	}
	amount, err := checkAmount(c, "amount")
	if nil != err {
		return err
	}

	client, key, err := session(m)
	if nil != err {
		return err
	}
	defer client.Close()

	destination, err := checkIdentityOr(c, "to", key.Identity())
	if nil != err {
		return err
	}

	return submitAndPrint(m, client, &ledger.MintArguments{
		Authority:   key.Identity(),
		Mint:        mint,
		Destination: destination,
		Amount:      amount,
	}, getNonce(c), key)
}

func runBurnTokens(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkIdentity(c, "mint")
	if nil != err {
		return err
	}
	amount, err := checkAmount(c, "amount")
	if nil != err {
		return err
	}

	client, key, err := session(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return submitAndPrint(m, client, &ledger.BurnArguments{
		Owner:  key.Identity(),
		Mint:   mint,
		Amount: amount,
	}, getNonce(c), key)
}

func runUpdatePrice(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkIdentity(c, "mint")
	if nil != err {
		return err
	}
	price, err := checkAmount(c, "cents")
	if nil != err {
		return err
	}

	client, key, err := session(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return submitAndPrint(m, client, &ledger.PriceArguments{
		Authority: key.Identity(),
		Mint:      mint,
		Price:     price,
	}, getNonce(c), key)
}

func runTransferLedgerAuthority(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkIdentity(c, "mint")
	if nil != err {
		return err
	}
	newAuthority, err := checkIdentity(c, "to")
	if nil != err {
		return err
	}

	client, key, err := session(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return submitAndPrint(m, client, &ledger.TransferAuthorityArguments{
		Authority:    key.Identity(),
		Mint:         mint,
		NewAuthority: newAuthority,
	}, getNonce(c), key)
}

func runLedger(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkIdentity(c, "mint")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Ledger(mint)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBalance(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	mint, err := checkIdentity(c, "mint")
	if nil != err {
		return err
	}

	// the identity file is only needed when no owner is given
	owner, err := checkIdentityOr(c, "owner", account.Null)
	if nil != err {
		return err
	}
	if owner.IsNull() {
		key, err := loadKey(m)
		if nil != err {
			return err
		}
		owner = key.Identity()
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Balance(mint, owner)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
