// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package status - credential status enumeration
//
// a credential starts Active and may move to any other status by an
// explicit update; there are no forbidden transitions
package status

import (
	"fmt"
	"strings"

	"github.com/credano/anchord/fault"
)

// Status - status enumeration
type Status uint64

// possible status values
const (
	Nothing      Status = iota // this must be the first value
	Active       Status = iota
	Revoked      Status = iota
	Suspended    Status = iota
	maximumValue Status = iota // this must be the last value
	First        Status = Nothing + 1
	Last         Status = maximumValue - 1
	Count        int    = int(Last) // count of statuses
)

// single letter codes for the compact stored encoding
const (
	activeCode    = "A"
	revokedCode   = "R"
	suspendedCode = "S"
)

// internal conversion
func toString(status Status) ([]byte, error) {
	switch status {
	case Nothing:
		return []byte{}, nil
	case Active:
		return []byte("Active"), nil
	case Revoked:
		return []byte("Revoked"), nil
	case Suspended:
		return []byte("Suspended"), nil
	default:
		return []byte{}, fault.ErrInvalidStatus
	}
}

// convert a string to a status
func fromString(in string) (Status, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "a", "active":
		return Active, nil
	case "r", "revoked":
		return Revoked, nil
	case "s", "suspended":
		return Suspended, nil
	default:
		return Nothing, fault.ErrInvalidStatus
	}
}

// String - convert a status to its string form
func (status Status) String() string {
	s, err := toString(status)
	if nil != err {
		return fmt.Sprintf("*invalid-status-%d*", uint64(status))
	}
	return string(s)
}

// GoString - status value and name, for debugging
func (status Status) GoString() string {
	return fmt.Sprintf("<Status#%d:%q>", uint64(status), status.String())
}

// Code - the single letter used in the compact stored encoding
func (status Status) Code() (string, error) {
	switch status {
	case Active:
		return activeCode, nil
	case Revoked:
		return revokedCode, nil
	case Suspended:
		return suspendedCode, nil
	default:
		return "", fault.ErrInvalidStatus
	}
}

// FromString - parse a status name or code
func FromString(in string) (Status, error) {
	status, err := fromString(in)
	if nil != err {
		return Nothing, err
	}
	if !status.IsValid() {
		return Nothing, fault.ErrInvalidStatus
	}
	return status, nil
}

// IsValid - valid status if in range of First to Last
// Nothing is not considered as valid
func (status Status) IsValid() bool {
	return status >= First && status <= Last
}
