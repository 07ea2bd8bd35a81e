// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/command/kwami-cli/rpccalls"
)

// connect and sign with the identity file
func session(m *metadata) (*rpccalls.Client, *account.PrivateKey, error) {
	key, err := loadKey(m)
	if nil != err {
		return nil, nil, err
	}
	client, err := connect(m)
	if nil != err {
		return nil, nil, err
	}
	return client, key, nil
}

func submitAndPrint(m *metadata, client *rpccalls.Client, arguments interface{}, nonce uint64, key *account.PrivateKey) error {
	reply, err := client.Submit(arguments, nonce, key)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runInitialise(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	collectionMint, err := checkIdentity(c, "collection")
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
	program, err := collection.New(info.Programs.Collection, nil, nil, nil)
	if nil != err {
		return err
	}
	_, bump, err := program.AuthorityAddress(collectionMint)
	if nil != err {
		return err
	}

	return submitAndPrint(m, client, &collection.InitialiseArguments{
		Authority:      key.Identity(),
		CollectionMint: collectionMint,
		Bump:           bump,
	}, getNonce(c), key)
}

func runMint(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	collectionMint, err := checkIdentity(c, "collection")
	if nil != err {
		return err
	}
	assetMint, err := checkIdentity(c, "asset")
	if nil != err {
		return err
	}
	dna, err := checkDna(c)
	if nil != err {
		return err
	}

	client, key, err := session(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return submitAndPrint(m, client, &collection.MintArguments{
		Owner:          key.Identity(),
		CollectionMint: collectionMint,
		AssetMint:      assetMint,
		DnaHash:        dna,
		Name:           c.String("name"),
		Symbol:         c.String("symbol"),
		Uri:            c.String("uri"),
	}, getNonce(c), key)
}

func runUpdate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	assetMint, err := checkIdentity(c, "asset")
	if nil != err {
		return err
	}

	client, key, err := session(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return submitAndPrint(m, client, &collection.UpdateArguments{
		Owner:     key.Identity(),
		AssetMint: assetMint,
		NewUri:    c.String("uri"),
	}, getNonce(c), key)
}

func runTransfer(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	assetMint, err := checkIdentity(c, "asset")
	if nil != err {
		return err
	}
	newOwner, err := checkIdentity(c, "to")
	if nil != err {
		return err
	}

	client, key, err := session(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return submitAndPrint(m, client, &collection.TransferArguments{
		Owner:     key.Identity(),
		AssetMint: assetMint,
		NewOwner:  newOwner,
	}, getNonce(c), key)
}

func runBurn(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	collectionMint, err := checkIdentity(c, "collection")
	if nil != err {
		return err
	}
	assetMint, err := checkIdentity(c, "asset")
	if nil != err {
		return err
	}

	client, key, err := session(m)
	if nil != err {
		return err
	}
	defer client.Close()

	return submitAndPrint(m, client, &collection.BurnArguments{
		Owner:          key.Identity(),
		CollectionMint: collectionMint,
		AssetMint:      assetMint,
	}, getNonce(c), key)
}

func runTransferCollectionAuthority(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	collectionMint, err := checkIdentity(c, "collection")
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

	return submitAndPrint(m, client, &collection.TransferAuthorityArguments{
		Authority:      key.Identity(),
		CollectionMint: collectionMint,
		NewAuthority:   newAuthority,
	}, getNonce(c), key)
}

func runCheckDna(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	collectionMint, err := checkIdentity(c, "collection")
	if nil != err {
		return err
	}
	dna, err := checkDna(c)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.CheckDNA(collectionMint, dna)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runAsset(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	assetMint, err := checkIdentity(c, "asset")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Asset(assetMint)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runCollection(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	collectionMint, err := checkIdentity(c, "collection")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Collection(collectionMint)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
