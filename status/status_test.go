// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package status_test

import (
	"encoding/json"
	"testing"

	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/status"
)

type statusTest struct {
	str string
	st  status.Status
	j   string
}

var valid = []statusTest{
	{"active", status.Active, `"Active"`},
	{"Active", status.Active, `"Active"`},
	{"ACTIVE", status.Active, `"Active"`},
	{"a", status.Active, `"Active"`},
	{"revoked", status.Revoked, `"Revoked"`},
	{"Revoked", status.Revoked, `"Revoked"`},
	{"r", status.Revoked, `"Revoked"`},
	{"suspended", status.Suspended, `"Suspended"`},
	{"Suspended", status.Suspended, `"Suspended"`},
	{"s", status.Suspended, `"Suspended"`},
}

var invalid = []string{
	"389749837598",
	"null",
	"activated",
	"deleted",
}

func TestValidString(t *testing.T) {
	for index, test := range valid {
		st, err := status.FromString(test.str)
		if nil != err {
			t.Fatalf("%d: string to status error: %s", index, err)
		}
		if st != test.st {
			t.Errorf("%d: %q converted to: %#v  expected: %#v", index, test.str, st, test.st)
		}
		if !st.IsValid() {
			t.Errorf("%d: %#v is not valid", index, st)
		}
	}
}

func TestInvalidString(t *testing.T) {
	for index, s := range invalid {
		if _, err := status.FromString(s); fault.ErrInvalidStatus != err {
			t.Errorf("%d: %q error: %v  expected: %v", index, s, err, fault.ErrInvalidStatus)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	for index, test := range valid {
		buffer, err := json.Marshal(test.st)
		if nil != err {
			t.Fatalf("%d: marshal error: %s", index, err)
		}
		if string(buffer) != test.j {
			t.Errorf("%d: marshalled: %s  expected: %s", index, buffer, test.j)
		}

		var st status.Status
		if err := json.Unmarshal(buffer, &st); nil != err {
			t.Fatalf("%d: unmarshal error: %s", index, err)
		}
		if st != test.st {
			t.Errorf("%d: unmarshalled: %#v  expected: %#v", index, st, test.st)
		}
	}
}

func TestCodes(t *testing.T) {
	testList := []struct {
		st   status.Status
		code string
	}{
		{status.Active, "A"},
		{status.Revoked, "R"},
		{status.Suspended, "S"},
	}

	for i, test := range testList {
		code, err := test.st.Code()
		if nil != err {
			t.Fatalf("%d: code error: %s", i, err)
		}
		if code != test.code {
			t.Errorf("%d: code: %q  expected: %q", i, code, test.code)
		}

		back, err := status.FromString(code)
		if nil != err {
			t.Fatalf("%d: code parse error: %s", i, err)
		}
		if back != test.st {
			t.Errorf("%d: code round trip: %#v  expected: %#v", i, back, test.st)
		}
	}

	if _, err := status.Nothing.Code(); fault.ErrInvalidStatus != err {
		t.Errorf("Nothing.Code() error: %v  expected: %v", err, fault.ErrInvalidStatus)
	}
}
