// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command-line access to a local property record database
//
// e.g. to register a record and transfer it to another holder:
//
//	property-ledger-cli -c ledger.conf create -n "Lot 14" -s 2048 -d "survey plan" -l residential
//	property-ledger-cli -c ledger.conf transfer -r 1 -R <receiver-key>
//
// the configuration file is Lua, a minimal example:
//
//	local M = {}
//	M.data_directory = "."
//	M.identity = "<caller-key-in-Base58>"
//	return M
package main
