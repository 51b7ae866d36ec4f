// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Jojotommy759/Clarity-Property-Ledger/util"
)

func TestEnsureAbsolute(t *testing.T) {

	testItems := []struct {
		directory string
		file      string
		expected  string
	}{
		{"/data", "ledger.conf", "/data/ledger.conf"},
		{"/data", "/etc/ledger.conf", "/etc/ledger.conf"},
		{"/data", "sub/../ledger.conf", "/data/ledger.conf"},
		{"/data/", "log", "/data/log"},
	}

	for i, item := range testItems {
		actual := util.EnsureAbsolute(item.directory, item.file)
		if actual != item.expected {
			t.Errorf("%d: EnsureAbsolute(%q, %q) = %q  expected: %q",
				i, item.directory, item.file, actual, item.expected)
		}
	}
}

func TestEnsureFileExists(t *testing.T) {

	name := filepath.Join(t.TempDir(), "present")
	if util.EnsureFileExists(name) {
		t.Errorf("missing file: %q reported as existing", name)
	}

	if err := os.WriteFile(name, []byte("x"), 0o600); err != nil {
		t.Fatalf("write error: %s", err)
	}
	if !util.EnsureFileExists(name) {
		t.Errorf("existing file: %q reported as missing", name)
	}
}
