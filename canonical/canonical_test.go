// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package canonical_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/credano/anchord/canonical"
)

// decode a JSON literal keeping number text as json.Number
func decode(t *testing.T, s string) interface{} {
	decoder := json.NewDecoder(strings.NewReader(s))
	decoder.UseNumber()

	var v interface{}
	if err := decoder.Decode(&v); nil != err {
		t.Fatalf("decode %q error: %s", s, err)
	}
	return v
}

func TestMarshalSortsKeysRecursively(t *testing.T) {
	testList := []struct {
		in       string
		expected string
	}{
		{`{}`, `{}`},
		{`{"b":1,"a":2}`, `{"a":2,"b":1}`},
		{`{"z":{"y":1,"x":2},"a":3}`, `{"a":3,"z":{"x":2,"y":1}}`},
		{`{"list":[3,2,1]}`, `{"list":[3,2,1]}`}, // arrays keep order
		{`{"n":null,"b":true}`, `{"b":true,"n":null}`},
		{`{"deep":[{"k2":1,"k1":{"b":0,"a":0}}]}`, `{"deep":[{"k1":{"a":0,"b":0},"k2":1}]}`},
		{`{"amount":10.50}`, `{"amount":10.50}`}, // json.Number text preserved
	}

	for i, test := range testList {
		data, err := canonical.Marshal(decode(t, test.in))
		if nil != err {
			t.Fatalf("%d: marshal error: %s", i, err)
		}
		if string(data) != test.expected {
			t.Errorf("%d: canonical: %s  expected: %s", i, data, test.expected)
		}
	}
}

// a number decoded without UseNumber arrives as float64 and
// normalizes to its ordinary JSON text, still deterministically
func TestMarshalNormalizesFloatInput(t *testing.T) {
	data, err := canonical.Marshal(map[string]interface{}{"amount": 10.50})
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if `{"amount":10.5}` != string(data) {
		t.Errorf("canonical: %s  expected: %s", data, `{"amount":10.5}`)
	}

	h1, err := canonical.Hash(map[string]interface{}{"amount": 10.50})
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}
	h2, err := canonical.Hash(decode(t, `{"amount":10.5}`))
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}
	if h1 != h2 {
		t.Errorf("digests differ: %s != %s", h1, h2)
	}
}

func TestHashIgnoresKeyOrder(t *testing.T) {
	testList := []struct {
		first  string
		second string
	}{
		{`{"name":"Ada","degree":"CS"}`, `{"degree":"CS","name":"Ada"}`},
		{`{"a":{"x":1,"y":2},"b":2}`, `{"b":2,"a":{"y":2,"x":1}}`},
	}

	for i, test := range testList {
		h1, err := canonical.Hash(decode(t, test.first))
		if nil != err {
			t.Fatalf("%d: hash error: %s", i, err)
		}
		h2, err := canonical.Hash(decode(t, test.second))
		if nil != err {
			t.Fatalf("%d: hash error: %s", i, err)
		}
		if h1 != h2 {
			t.Errorf("%d: digests differ: %s ≠ %s", i, h1, h2)
		}
		if 64 != len(h1) {
			t.Errorf("%d: digest length: %d  expected: 64", i, len(h1))
		}
	}
}

func TestHashSeparatesValues(t *testing.T) {
	h1, err := canonical.Hash(decode(t, `{"name":"Ada","degree":"CS"}`))
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}
	h2, err := canonical.Hash(decode(t, `{"name":"Ada","degree":"EE"}`))
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}
	if h1 == h2 {
		t.Error("different payloads must not collide")
	}
}

func TestHashRepeatable(t *testing.T) {
	payload := decode(t, `{"name":"Ada","degree":"CS","scores":[1,2,3]}`)
	h1, err := canonical.Hash(payload)
	if nil != err {
		t.Fatalf("hash error: %s", err)
	}
	for i := 0; i < 10; i += 1 {
		h2, err := canonical.Hash(payload)
		if nil != err {
			t.Fatalf("%d: hash error: %s", i, err)
		}
		if h1 != h2 {
			t.Fatalf("%d: hash is not stable: %s ≠ %s", i, h1, h2)
		}
	}
}

func TestMarshalStruct(t *testing.T) {
	type payload struct {
		Name   string `json:"name"`
		Degree string `json:"degree"`
	}
	data, err := canonical.Marshal(payload{Name: "Ada", Degree: "CS"})
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	expected := `{"degree":"CS","name":"Ada"}`
	if string(data) != expected {
		t.Errorf("canonical: %s  expected: %s", data, expected)
	}
}
