// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package canonical - deterministic payload serialization and hashing
//
// a credential payload is hashed over a canonical JSON rendering:
// object keys are sorted at every nesting level and arrays keep their
// order, so two logically equal payloads always produce the same
// digest regardless of key order
//
// numbers that arrive as json.Number keep their exact text; numbers
// that arrive as Go values render through their ordinary JSON form,
// so a payload decoded without UseNumber is normalized (10.50
// becomes 10.5) but still deterministic
package canonical

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"sort"

	"golang.org/x/crypto/sha3"
)

// Marshal - render any JSON-serializable value in canonical form
func Marshal(v interface{}) ([]byte, error) {

	// normalize through the json package first so that structs, maps
	// and primitives all arrive as the same generic tree
	data, err := json.Marshal(v)
	if nil != err {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber() // keep number text intact

	var tree interface{}
	if err := decoder.Decode(&tree); nil != err {
		return nil, err
	}

	buffer := &bytes.Buffer{}
	if err := render(buffer, tree); nil != err {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// Hash - hex encoded SHA3-256 digest of the canonical rendering
func Hash(v interface{}) (string, error) {
	data, err := Marshal(v)
	if nil != err {
		return "", err
	}
	digest := sha3.Sum256(data)
	return hex.EncodeToString(digest[:]), nil
}

// recursive canonical renderer
func render(buffer *bytes.Buffer, item interface{}) error {
	switch value := item.(type) {

	case nil:
		buffer.WriteString("null")

	case bool:
		if value {
			buffer.WriteString("true")
		} else {
			buffer.WriteString("false")
		}

	case json.Number:
		buffer.WriteString(value.String())

	case string:
		data, err := json.Marshal(value)
		if nil != err {
			return err
		}
		buffer.Write(data)

	case []interface{}:
		buffer.WriteByte('[')
		for i, element := range value {
			if 0 != i {
				buffer.WriteByte(',')
			}
			if err := render(buffer, element); nil != err {
				return err
			}
		}
		buffer.WriteByte(']')

	case map[string]interface{}:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		buffer.WriteByte('{')
		for i, key := range keys {
			if 0 != i {
				buffer.WriteByte(',')
			}
			data, err := json.Marshal(key)
			if nil != err {
				return err
			}
			buffer.Write(data)
			buffer.WriteByte(':')
			if err := render(buffer, value[key]); nil != err {
				return err
			}
		}
		buffer.WriteByte('}')

	default:
		// cannot happen: the json round trip only produces the
		// types handled above
		data, err := json.Marshal(value)
		if nil != err {
			return err
		}
		buffer.Write(data)
	}
	return nil
}
