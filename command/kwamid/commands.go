// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/configuration"
	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/ledger"
	"github.com/kwami-ai/kwamid/rpc/certificate"
	"github.com/kwami-ai/kwamid/util"
	"github.com/kwami-ai/kwamid/zmqutil"
)

const (
	identityFilename = "identity.private"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, configuration.DefaultRPCCertificateFile)
		privateKeyFilename := getFilenameWithDirectory(arguments, configuration.DefaultRPCKeyFile)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("kwamid", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFilename, certificateFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publish-keys", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, configuration.DefaultPublishPublicKeyFile)
		privateKeyFilename := getFilenameWithDirectory(arguments, configuration.DefaultPublishPrivateKeyFile)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			fmt.Printf("generate private key: %q and public key: %q error: %s\n", privateKeyFilename, publicKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "gen-identity", "identity":
		privateKeyFilename := getFilenameWithDirectory(arguments, identityFilename)
		identity, err := makeIdentity(privateKeyFilename)
		if nil != err {
			fmt.Printf("generate identity: %q error: %s\n", privateKeyFilename, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated identity: %s in: %q\n", identity, privateKeyFilename)

	case "start", "run":
		return false // continue processing

	case "dump-config", "cfg", "program-addresses", "addr":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)
		return true

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)        - display this message\n\n")
		fmt.Printf("  version                    (v)        - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] (rpc)     - create private key in:  %q\n", "DIR/"+configuration.DefaultRPCKeyFile)
		fmt.Printf("                                          and the certificate in: %q\n", "DIR/"+configuration.DefaultRPCCertificateFile)
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-keys [DIR]     (publish)  - create private key in: %q\n", "DIR/"+configuration.DefaultPublishPrivateKeyFile)
		fmt.Printf("                                          and the public key in: %q\n", "DIR/"+configuration.DefaultPublishPublicKeyFile)
		fmt.Printf("\n")

		fmt.Printf("  gen-identity [DIR]         (identity) - create a signing identity in: %q\n", "DIR/"+identityFilename)
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)      - just run the program, same as no arguments\n")
		fmt.Printf("                                          for convienience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  dump-config                (cfg)      - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  program-addresses KIND MINT (addr)    - derived addresses of a \"collection\", \"asset\" or \"ledger\" mint\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and preform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *configuration.Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "dump-config", "cfg":
		err := dumpConfiguration(os.Stdout, options)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	case "program-addresses", "addr":
		if 2 != len(arguments) {
			exitwithstatus.Message("usage: program-addresses collection|asset|ledger MINT")
		}
		err := programAddresses(os.Stdout, options, arguments[0], arguments[1])
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}

	default: // unknown commands fall through to main program
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// if no directory argument is given use the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	directory := "."
	if len(arguments) >= 1 {
		directory = arguments[0]
	}
	return filepath.Join(directory, name)
}

// write a fresh ed25519 key and return its identity
func makeIdentity(fileName string) (account.Identity, error) {
	if util.EnsureFileExists(fileName) {
		return account.Null, fault.KeyFileAlreadyExists
	}
	key, err := account.NewPrivateKey()
	if nil != err {
		return account.Null, err
	}
	text, err := key.MarshalText()
	if nil != err {
		return account.Null, err
	}
	err = ioutil.WriteFile(fileName, text, 0600)
	if nil != err {
		os.Remove(fileName)
		return account.Null, err
	}
	return key.Identity(), nil
}

func dumpConfiguration(w io.Writer, options *configuration.Configuration) error {
	b, err := json.Marshal(options)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	err = json.Indent(&out, b, "", "  ")
	if err != nil {
		return err
	}
	out.WriteString("\n")
	_, err = out.WriteTo(w)
	return err
}

// print the derived addresses of one mint
func programAddresses(w io.Writer, options *configuration.Configuration, kind string, mintText string) error {
	collectionId, ledgerId, err := options.Programs.Identities()
	if nil != err {
		return err
	}
	mint, err := account.IdentityFromBase58(mintText)
	if nil != err {
		return err
	}

	switch kind {
	case "collection":
		c, err := collection.New(collectionId, nil, nil, nil)
		if nil != err {
			return err
		}
		authority, bump, err := c.AuthorityAddress(mint)
		if nil != err {
			return err
		}
		registry, err := c.RegistryAddress(mint)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "authority: %s  bump: %d\n", authority, bump)
		fmt.Fprintf(w, "registry:  %s\n", registry)

	case "asset":
		c, err := collection.New(collectionId, nil, nil, nil)
		if nil != err {
			return err
		}
		asset, bump, err := c.AssetAddress(mint)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "asset: %s  bump: %d\n", asset, bump)

	case "ledger":
		authority, bump, err := ledger.New(ledgerId, nil, nil).AuthorityAddress(mint)
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "authority: %s  bump: %d\n", authority, bump)

	default:
		return fmt.Errorf("unknown kind: %q", kind)
	}
	return nil
}
