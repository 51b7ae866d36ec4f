// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Property Ledger Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/bitmark-inc/logger"

	"github.com/Jojotommy759/Clarity-Property-Ledger/configuration"
	"github.com/Jojotommy759/Clarity-Property-Ledger/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultDatabaseName = "property"

	defaultLogDirectory = "log"
	defaultLogFile      = "property-ledger-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

var defaultLogLevels = map[string]string{
	"main":            "error",
	"ledger":          "error",
	logger.DefaultTag: "critical",
}

// Configuration - configuration file data
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Database      string               `gluamapper:"database" json:"database"`
	Identity      string               `gluamapper:"identity" json:"identity"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := homedir.Expand(configurationFileName)
	if err != nil {
		return nil, err
	}
	configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
	if err != nil {
		return nil, err
	}

	if !util.EnsureFileExists(configurationFileName) {
		return nil, fmt.Errorf("configuration file: %q does not exist", configurationFileName)
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory: defaultDataDirectory,
		Database:      defaultDatabaseName,
		Identity:      "",
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if options.DataDirectory == "" || options.DataDirectory == "~" {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if options.DataDirectory == "." {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory, err = homedir.Expand(options.DataDirectory)
		if err != nil {
			return nil, err
		}
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); err != nil {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = util.EnsureAbsolute(options.DataDirectory, *f)
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0o700); err != nil {
			return nil, err
		}
	}

	// done
	return options, nil
}
