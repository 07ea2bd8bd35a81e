// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package certificate_test

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/kwami-ai/kwamid/fault"
	"github.com/kwami-ai/kwamid/fixtures"
	"github.com/kwami-ai/kwamid/rpc/certificate"
	rpcfixtures "github.com/kwami-ai/kwamid/rpc/fixtures"
)

func TestLoad(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	certificateFile, keyFile := rpcfixtures.Certificate(t)
	log := logger.New(fixtures.LogCategory)

	config, fin, err := certificate.Load(log, "test", certificateFile, keyFile)
	assert.Nil(t, err, "load")
	assert.Len(t, config.Certificates, 1, "certificates")
	assert.Equal(t, certificate.Fingerprint(config.Certificates[0].Certificate[0]), fin, "fingerprint")

	cert, _ := ioutil.ReadFile(certificateFile)
	key, _ := ioutil.ReadFile(keyFile)
	_, fin2, err := certificate.Get(log, "test", string(cert), string(key))
	assert.Nil(t, err, "get")
	assert.Equal(t, fin, fin2, "same fingerprint")

	_, _, err = certificate.Get(log, "test", "junk", string(key))
	assert.NotNil(t, err, "bad certificate")
}

func TestMakeSelfSignedExisting(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	certificateFile, keyFile := rpcfixtures.Certificate(t)
	err := certificate.MakeSelfSigned("test", certificateFile, keyFile, nil)
	assert.Equal(t, fault.CertificateFileExists, err, "certificate exists")

	err = certificate.MakeSelfSigned("test", filepath.Join(filepath.Dir(keyFile), "other.crt"), keyFile, nil)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "key exists")
}
