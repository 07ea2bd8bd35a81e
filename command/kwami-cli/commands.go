// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func commands() []cli.Command {
	return []cli.Command{
		{
			Name:      "generate",
			Usage:     "create a new signing identity in the --identity file",
			ArgsUsage: "\n   (* = required)",
			Action:    runGenerate,
		},
		{
			Name:   "identity",
			Usage:  "display the identity of the --identity file",
			Action: runIdentity,
		},
		{
			Name:   "info",
			Usage:  "display kwamid information",
			Action: runInfo,
		},
		{
			Name:      "logs",
			Usage:     "display the log lines of a committed instruction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "id",
					Value: "",
					Usage: "*instruction `ID`",
				},
			},
			Action: runLogs,
		},

		// collection program
		{
			Name:      "initialise",
			Aliases:   []string{"initialize"},
			Usage:     "create a collection with the signer as authority",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, m",
					Value: "",
					Usage: "*collection `MINT`",
				},
				nonceFlag,
			},
			Action: runInitialise,
		},
		{
			Name:      "mint",
			Usage:     "mint a Kwami NFT with unique DNA owned by the signer",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, m",
					Value: "",
					Usage: "*collection `MINT`",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*new asset `MINT`",
				},
				cli.StringFlag{
					Name:  "dna, d",
					Value: "",
					Usage: "+hex SHA-256 DNA `FINGERPRINT`",
				},
				cli.StringFlag{
					Name:  "dna-text, t",
					Value: "",
					Usage: "+DNA `TEXT` to be hashed",
				},
				cli.StringFlag{
					Name:  "name",
					Value: "",
					Usage: "*token `NAME` (max 32)",
				},
				cli.StringFlag{
					Name:  "symbol",
					Value: "",
					Usage: "*token `SYMBOL` (max 10)",
				},
				cli.StringFlag{
					Name:  "uri",
					Value: "",
					Usage: "*metadata `URI` (max 200)",
				},
				nonceFlag,
			},
			Action: runMint,
		},
		{
			Name:      "update",
			Usage:     "change the metadata URI of an owned Kwami",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `MINT`",
				},
				cli.StringFlag{
					Name:  "uri",
					Value: "",
					Usage: "*new metadata `URI`",
				},
				nonceFlag,
			},
			Action: runUpdate,
		},
		{
			Name:      "transfer",
			Usage:     "transfer an owned Kwami",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `MINT`",
				},
				cli.StringFlag{
					Name:  "to",
					Value: "",
					Usage: "*new owner `IDENTITY`",
				},
				nonceFlag,
			},
			Action: runTransfer,
		},
		{
			Name:      "burn",
			Usage:     "burn an owned Kwami and release its DNA",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, m",
					Value: "",
					Usage: "*collection `MINT`",
				},
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `MINT`",
				},
				nonceFlag,
			},
			Action: runBurn,
		},
		{
			Name:      "transfer-collection-authority",
			Usage:     "hand the collection authority to another identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, m",
					Value: "",
					Usage: "*collection `MINT`",
				},
				cli.StringFlag{
					Name:  "to",
					Value: "",
					Usage: "*new authority `IDENTITY`",
				},
				nonceFlag,
			},
			Action: runTransferCollectionAuthority,
		},
		{
			Name:      "check-dna",
			Usage:     "test whether a DNA is registered",
			ArgsUsage: "\n   (* = required, + = select one)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, m",
					Value: "",
					Usage: "*collection `MINT`",
				},
				cli.StringFlag{
					Name:  "dna, d",
					Value: "",
					Usage: "+hex SHA-256 DNA `FINGERPRINT`",
				},
				cli.StringFlag{
					Name:  "dna-text, t",
					Value: "",
					Usage: "+DNA `TEXT` to be hashed",
				},
			},
			Action: runCheckDna,
		},
		{
			Name:      "asset",
			Usage:     "display a Kwami and its metadata",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "asset, a",
					Value: "",
					Usage: "*asset `MINT`",
				},
			},
			Action: runAsset,
		},
		{
			Name:      "collection",
			Usage:     "display a collection and its registry occupancy",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "collection, m",
					Value: "",
					Usage: "*collection `MINT`",
				},
			},
			Action: runCollection,
		},

		// ledger program
		{
			Name:      "ledger-initialise",
			Aliases:   []string{"ledger-initialize"},
			Usage:     "create a QWAMI ledger with the signer as authority",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*token `MINT`",
				},
				nonceFlag,
			},
			Action: runLedgerInitialise,
		},
		{
			Name:      "mint-tokens",
			Usage:     "issue tokens, ledger authority only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*token `MINT`",
				},
				cli.StringFlag{
					Name:  "to",
					Value: "",
					Usage: " destination `IDENTITY` [default signer]",
				},
				cli.StringFlag{
					Name:  "amount",
					Value: "",
					Usage: "*base unit `AMOUNT`",
				},
				nonceFlag,
			},
			Action: runMintTokens,
		},
		{
			Name:      "burn-tokens",
			Usage:     "destroy tokens held by the signer",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*token `MINT`",
				},
				cli.StringFlag{
					Name:  "amount",
					Value: "",
					Usage: "*base unit `AMOUNT`",
				},
				nonceFlag,
			},
			Action: runBurnTokens,
		},
		{
			Name:      "update-price",
			Usage:     "set the informational base price, ledger authority only",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*token `MINT`",
				},
				cli.StringFlag{
					Name:  "cents",
					Value: "",
					Usage: "*price in USD `CENTS`",
				},
				nonceFlag,
			},
			Action: runUpdatePrice,
		},
		{
			Name:      "transfer-ledger-authority",
			Usage:     "hand the ledger authority to another identity",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*token `MINT`",
				},
				cli.StringFlag{
					Name:  "to",
					Value: "",
					Usage: "*new authority `IDENTITY`",
				},
				nonceFlag,
			},
			Action: runTransferLedgerAuthority,
		},
		{
			Name:      "ledger",
			Usage:     "display supply counters",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*token `MINT`",
				},
			},
			Action: runLedger,
		},
		{
			Name:      "balance",
			Usage:     "display a token balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "mint, m",
					Value: "",
					Usage: "*token `MINT`",
				},
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " owner `IDENTITY` [default signer]",
				},
			},
			Action: runBalance,
		},

		// events
		{
			Name:      "watch",
			Usage:     "print commit events from a kwamid publisher",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "publisher, p",
					Value: "",
					Usage: "*event publisher `HOST:PORT`",
				},
				cli.IntFlag{
					Name:  "count",
					Value: 0,
					Usage: " stop after `COUNT` events [default never]",
				},
			},
			Action: runWatch,
		},
		{
			Name:   "version",
			Usage:  "display kwami-cli version",
			Action: runVersion,
		},
	}
}
