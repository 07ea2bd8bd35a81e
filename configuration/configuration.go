// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/kwami-ai/kwamid/account"
	"github.com/kwami-ai/kwamid/collection"
	"github.com/kwami-ai/kwamid/ledger"
	"github.com/kwami-ai/kwamid/publish"
	"github.com/kwami-ai/kwamid/rpc/listeners"
	"github.com/kwami-ai/kwamid/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	DefaultRPCCertificateFile    = "rpc.crt"
	DefaultRPCKeyFile            = "rpc.key"
	DefaultPublishPublicKeyFile  = "publish.public"
	DefaultPublishPrivateKeyFile = "publish.private"

	defaultLevelDBDirectory = "data"
	defaultDatabaseName     = "kwami"

	defaultLogDirectory = "log"
	defaultLogFile      = "kwamid.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRPCClients   = 10
	defaultRPCBandwidth = 25000000
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - location of the LevelDB files
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

// ProgramsType - base58 identities of the two programs
type ProgramsType struct {
	Collection string `gluamapper:"collection" json:"collection"`
	Ledger     string `gluamapper:"ledger" json:"ledger"`
}

// Configuration - the complete daemon configuration
type Configuration struct {
	DataDirectory string                     `gluamapper:"data_directory" json:"data_directory"`
	PidFile       string                     `gluamapper:"pidfile" json:"pidfile"`
	Database      DatabaseType               `gluamapper:"database" json:"database"`
	Programs      ProgramsType               `gluamapper:"programs" json:"programs"`
	Collection    collection.Configuration   `gluamapper:"collection" json:"collection"`
	Ledger        ledger.Configuration       `gluamapper:"ledger" json:"ledger"`
	ClientRPC     listeners.RPCConfiguration `gluamapper:"client_rpc" json:"client_rpc"`
	Publishing    publish.Configuration      `gluamapper:"publishing" json:"publishing"`
	Logging       logger.Configuration       `gluamapper:"logging" json:"logging"`
}

// New - a configuration holding all defaults
func New() *Configuration {
	return &Configuration{

		DataDirectory: defaultDataDirectory,
		PidFile:       "", // no PidFile by default

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      defaultDatabaseName,
		},

		Ledger: ledger.Configuration{
			MaximumSupply: ledger.DefaultMaximumSupply,
		},

		ClientRPC: listeners.RPCConfiguration{
			MaximumConnections: defaultRPCClients,
			Bandwidth:          defaultRPCBandwidth,
			Certificate:        DefaultRPCCertificateFile,
			PrivateKey:         DefaultRPCKeyFile,
		},

		Publishing: publish.Configuration{
			PublicKey:  DefaultPublishPublicKeyFile,
			PrivateKey: DefaultPublishPrivateKeyFile,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}
}

// Read - read decode and verify the configuration
func Read(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := New()
	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if _, _, err := options.Programs.Identities(); nil != err {
		return nil, err
	}

	err = options.resolve(dataDirectory)
	if nil != err {
		return nil, err
	}
	return options, nil
}

// Identities - decode both program identities, neither may be null
func (programs ProgramsType) Identities() (account.Identity, account.Identity, error) {
	c, err := programIdentity("collection", programs.Collection)
	if nil != err {
		return account.Null, account.Null, err
	}
	l, err := programIdentity("ledger", programs.Ledger)
	if nil != err {
		return account.Null, account.Null, err
	}
	if c == l {
		return account.Null, account.Null, fmt.Errorf("programs: collection and ledger share identity: %s", c)
	}
	return c, l, nil
}

func programIdentity(name string, text string) (account.Identity, error) {
	if "" == text {
		return account.Null, fmt.Errorf("programs.%s: missing identity", name)
	}
	id, err := account.IdentityFromBase58(text)
	if nil != err {
		return account.Null, fmt.Errorf("programs.%s: %q error: %s", name, text, err)
	}
	if id.IsNull() {
		return account.Null, fmt.Errorf("programs.%s: null identity", name)
	}
	return id, nil
}

// expand all relative paths against the data directory
func (options *Configuration) resolve(configDirectory string) error {

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = configDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = util.EnsureAbsolute(configDirectory, options.DataDirectory)
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return err
	} else if !fileInfo.IsDir() {
		return fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.ClientRPC.Certificate,
		&options.ClientRPC.PrivateKey,
		&options.Publishing.PublicKey,
		&options.Publishing.PrivateKey,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	if "" != options.PidFile {
		options.PidFile = util.EnsureAbsolute(options.DataDirectory, options.PidFile)
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path separator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = util.EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return fmt.Errorf("Files: %q is not plain name", *f[0])
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return err
		}
	}

	return nil
}
