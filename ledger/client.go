// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/credano/anchord/account"
	"github.com/credano/anchord/fault"
)

// fixed timeout applied to every outbound call
const defaultCallTimeout = 30 * time.Second

// Client - a JSON-RPC connection to a ledger node
type Client struct {
	log     *logger.L
	conn    net.Conn
	client  *rpc.Client
	timeout time.Duration
}

// NewClient - connect to a ledger endpoint
//
// nodes run with self-signed certificates so verification is by the
// ledger's own signature checks, not the TLS chain
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {

	if 0 == timeout {
		timeout = defaultCallTimeout
	}

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.DialWithDialer(&net.Dialer{Timeout: timeout}, "tcp", endpoint, tlsConfig)
	if nil != err {
		return nil, fault.ErrLedgerUnreachable
	}

	return &Client{
		log:     logger.New("ledger"),
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		timeout: timeout,
	}, nil
}

// Close - shutdown the ledger connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// GetAccount - fetch fresh account state
func (c *Client) GetAccount(acct *account.Account) (*AccountState, error) {
	var reply AccountReply
	err := c.call("Account.Get", AccountArguments{Account: acct.String()}, &reply)
	if nil != err {
		return nil, translate(err, fault.ErrLedgerUnreachable)
	}
	return &AccountState{
		Balance:  reply.Balance,
		Sequence: reply.Sequence,
	}, nil
}

// GetData - fetch one data entry from an account
func (c *Client) GetData(acct *account.Account, key string) ([]byte, error) {
	var reply DataReply
	err := c.call("Account.Data", DataArguments{Account: acct.String(), Key: key}, &reply)
	if nil != err {
		return nil, translate(err, fault.ErrLedgerUnreachable)
	}
	return reply.Value, nil
}

// Submit - submit a packed signed transaction
func (c *Client) Submit(packed Packed) (*SubmitResult, error) {
	var reply SubmitResult
	err := c.call("Transaction.Submit", SubmitArguments{Packed: packed}, &reply)
	if nil != err {
		err = translate(err, fault.ErrSubmissionFailed)
		c.log.Errorf("submit failed: kind: %T  message: %s", err, err)
		return nil, err
	}
	return &reply, nil
}

// one round trip with the fixed per-call deadline
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	if err := c.conn.SetDeadline(time.Now().Add(c.timeout)); nil != err {
		return err
	}
	return c.client.Call(method, arguments, reply)
}
