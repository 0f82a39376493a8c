// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/credano/anchord/storage"
)

func TestMain(m *testing.M) {
	directory, err := ioutil.TempDir("", "storage-test")
	if nil != err {
		panic(err)
	}
	defer os.RemoveAll(directory)

	logging := logger.Configuration{
		Directory: directory,
		File:      "storage-test.log",
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)
	defer logger.Finalise()

	if err := storage.Initialise(filepath.Join(directory, "test.leveldb")); nil != err {
		panic(err)
	}
	defer storage.Finalise()

	os.Exit(m.Run())
}

func TestPutGetDelete(t *testing.T) {
	key := []byte("anchor:0123456789abcdef")
	value := []byte(`{"v":1,"h":"ab","s":"A","t":0}`)

	storage.Pool.Data.Put(key, value)
	assert.True(t, storage.Pool.Data.Has(key), "expected key to exist")
	assert.Equal(t, value, storage.Pool.Data.Get(key), "wrong value")

	storage.Pool.Data.Delete(key)
	assert.False(t, storage.Pool.Data.Has(key), "expected key to be deleted")
	assert.Nil(t, storage.Pool.Data.Get(key), "expected nil for deleted key")
}

// the same key must be independent in different pools
func TestPoolsAreDisjoint(t *testing.T) {
	key := []byte("shared-key")

	storage.Pool.Accounts.Put(key, []byte("account"))
	storage.Pool.Anchors.Put(key, []byte("anchor"))

	assert.Equal(t, []byte("account"), storage.Pool.Accounts.Get(key))
	assert.Equal(t, []byte("anchor"), storage.Pool.Anchors.Get(key))

	storage.Pool.Accounts.Delete(key)
	assert.False(t, storage.Pool.Accounts.Has(key))
	assert.True(t, storage.Pool.Anchors.Has(key))
	storage.Pool.Anchors.Delete(key)
}

