// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/kwami-ai/kwamid/rpc/certificate"
)

// Certificate - a fresh self-signed certificate and key in a temporary directory
func Certificate(t *testing.T) (string, string) {
	dir, err := ioutil.TempDir("", "kwamid-rpc")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	certificateFile := filepath.Join(dir, "rpc.crt")
	keyFile := filepath.Join(dir, "rpc.key")

	err = certificate.MakeSelfSigned("test", certificateFile, keyFile, []string{"127.0.0.1"})
	if nil != err {
		os.RemoveAll(dir)
		t.Fatalf("certificate error: %s", err)
	}
	return certificateFile, keyFile
}
