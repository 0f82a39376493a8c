// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package anchors

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/credano/anchord/anchor"
	"github.com/credano/anchord/fault"
	"github.com/credano/anchord/rpc/ratelimit"
	"github.com/credano/anchord/status"
)

const (
	rateLimitAnchors = 200
	rateBurstAnchors = 100
)

// Anchors - type for the RPC
type Anchors struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Service *anchor.Service
}

func New(log *logger.L, service *anchor.Service) *Anchors {
	return &Anchors{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAnchors, rateBurstAnchors),
		Service: service,
	}
}

// ---

// CreateArguments - the credential payload to anchor
type CreateArguments struct {
	Payload interface{} `json:"payload"`
}

// Create - anchor a credential payload
func (anchors *Anchors) Create(arguments *CreateArguments, reply *anchor.CreateResult) error {
	if err := ratelimit.Limit(anchors.Limiter); nil != err {
		return err
	}
	if nil == arguments {
		return fault.ErrMissingParameters
	}

	anchors.Log.Infof("Anchors.Create: %v", arguments.Payload)

	result, err := anchors.Service.Create(arguments.Payload)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// ---

// ReadArguments - the identifier to look up
type ReadArguments struct {
	Identifier string `json:"identifier"`
}

// Read - fetch the anchored hash and status for an identifier
func (anchors *Anchors) Read(arguments *ReadArguments, reply *anchor.ReadResult) error {
	if err := ratelimit.Limit(anchors.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Identifier {
		return fault.ErrMissingParameters
	}

	anchors.Log.Infof("Anchors.Read: %s", arguments.Identifier)

	result, err := anchors.Service.Read(arguments.Identifier)
	if nil != err {
		return err
	}
	*reply = *result
	return nil
}

// ---

// UpdateArguments - identifier and its replacement status
type UpdateArguments struct {
	Identifier string        `json:"identifier"`
	Status     status.Status `json:"status"`
}

// UpdateReply - acknowledgement only
type UpdateReply struct {
	Updated bool `json:"updated"`
}

// Update - change the status of an anchored credential
func (anchors *Anchors) Update(arguments *UpdateArguments, reply *UpdateReply) error {
	if err := ratelimit.Limit(anchors.Limiter); nil != err {
		return err
	}
	if nil == arguments || "" == arguments.Identifier {
		return fault.ErrMissingParameters
	}

	anchors.Log.Infof("Anchors.Update: %s to %s", arguments.Identifier, arguments.Status)

	if err := anchors.Service.Update(arguments.Identifier, arguments.Status); nil != err {
		return err
	}
	reply.Updated = true
	return nil
}
