// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - the CLI's small JSON settings file
package configuration

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/credano/anchord/chain"
	"github.com/credano/anchord/fault"
)

// DefaultNetwork - select the default network
const DefaultNetwork = chain.Testing

// Configuration - configuration file data format
type Configuration struct {
	Network string `json:"network"`
	Connect string `json:"connect"`
	TestNet bool   `json:"testnet"`
}

// GetConfiguration - read the configuration
func GetConfiguration(filename string) (*Configuration, error) {

	options := &Configuration{}

	err := readConfiguration(filename, options)
	if nil != err {
		return nil, err
	}

	if !chain.Valid(options.Network) {
		return nil, fault.ErrInvalidChain
	}
	options.TestNet = chain.IsTesting(options.Network)

	return options, nil
}

// generic JSON decoder
func readConfiguration(filename string, options interface{}) error {

	filename, err := filepath.Abs(filepath.Clean(filename))
	if nil != err {
		return err
	}

	f, err := os.Open(filename)
	if nil != err {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	return dec.Decode(options)
}

// Save - write the configuration, keeping the previous file as backup
func Save(filename string, configuration *Configuration) error {

	tempFile := filename + ".new"
	previousFile := filename + ".bk"

	os.Remove(tempFile)

	b, err := json.MarshalIndent(configuration, "", "  ")
	if nil != err {
		return err
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(filename), 0700); nil != err {
		return err
	}
	if err := writeFile(tempFile, b); nil != err {
		return err
	}

	if err := os.Remove(previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	if err := os.Rename(filename, previousFile); nil != err && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tempFile, filename)
}

func writeFile(filename string, data []byte) error {
	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if nil != err {
		return err
	}
	if _, err := f.Write(data); nil != err {
		f.Close()
		return err
	}
	return f.Close()
}
