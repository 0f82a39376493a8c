// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"fmt"

	"github.com/credano/anchord/anchor"
	"github.com/credano/anchord/rpc/anchors"
	"github.com/credano/anchord/status"
)

// CreateAnchor - anchor a credential payload
func (c *Client) CreateAnchor(payload interface{}) (*anchor.CreateResult, error) {

	if c.verbose {
		fmt.Fprintf(c.handle, "payload: %v\n", payload)
	}

	arguments := anchors.CreateArguments{
		Payload: payload,
	}
	var reply anchor.CreateResult
	if err := c.client.Call("Anchors.Create", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ReadAnchor - fetch the anchored hash and status for an identifier
func (c *Client) ReadAnchor(identifier string) (*anchor.ReadResult, error) {

	arguments := anchors.ReadArguments{
		Identifier: identifier,
	}
	var reply anchor.ReadResult
	if err := c.client.Call("Anchors.Read", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpdateAnchor - change the status of an anchored credential
func (c *Client) UpdateAnchor(identifier string, newStatus status.Status) (*anchors.UpdateReply, error) {

	arguments := anchors.UpdateArguments{
		Identifier: identifier,
		Status:     newStatus,
	}
	var reply anchors.UpdateReply
	if err := c.client.Call("Anchors.Update", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
