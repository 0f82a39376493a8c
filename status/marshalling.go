// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package status

// MarshalText - convert a status into JSON
func (status Status) MarshalText() ([]byte, error) {
	return toString(status)
}

// UnmarshalText - convert status string to a status enumeration value from JSON
func (status *Status) UnmarshalText(s []byte) error {
	st, err := fromString(string(s))
	if nil != err {
		return err
	}
	*status = st
	return nil
}
