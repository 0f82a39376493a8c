// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 Credano Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type AccountError GenericError
type ConfigurationError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ParseError GenericError
type ProcessError GenericError
type SubmissionError GenericError

// common errors - keep in alphabetic order
var (
	ErrAccountNotFound            = AccountError("account does not exist on the ledger")
	ErrAlreadyInitialised         = ProcessError("already initialised")
	ErrCannotDecodeAccount        = ConfigurationError("cannot decode account")
	ErrCannotDecodeIdentifier     = ParseError("cannot decode identifier")
	ErrCannotDecodeSeed           = ConfigurationError("cannot decode seed")
	ErrCertificateFileExists      = InvalidError("certificate file already exists")
	ErrChainEndpointMismatch      = ConfigurationError("chain and endpoint are inconsistent")
	ErrChecksumMismatch           = ConfigurationError("checksum mismatch")
	ErrDataEntryTooLong           = LengthError("data entry value too long")
	ErrIdentifierNotFound         = NotFoundError("no anchor record for identifier")
	ErrInsufficientFunds          = AccountError("account balance below operational minimum")
	ErrInvalidChain               = ConfigurationError("invalid chain name")
	ErrInvalidKeyLength           = ConfigurationError("key length is invalid")
	ErrInvalidLoggerChannel       = ProcessError("invalid logger channel")
	ErrInvalidSeedHeader          = ConfigurationError("invalid seed header")
	ErrInvalidSeedLength          = ConfigurationError("invalid seed length")
	ErrInvalidSignature           = InvalidError("invalid signature")
	ErrInvalidStatus              = InvalidError("invalid credential status")
	ErrKeyFileExists              = InvalidError("key file already exists")
	ErrLedgerUnreachable          = SubmissionError("cannot reach ledger endpoint")
	ErrMemoTooLong                = LengthError("memo too long")
	ErrMissingParameters          = InvalidError("missing parameters")
	ErrMissingPayload             = InvalidError("missing payload")
	ErrNotInitialised             = ProcessError("not initialised")
	ErrNotPublicKey               = ConfigurationError("not a public key")
	ErrRateLimiting               = ProcessError("rate limiting")
	ErrSequenceConflict           = SubmissionError("transaction sequence conflict")
	ErrSubmissionFailed           = SubmissionError("ledger rejected the transaction")
	ErrUnrecognizedRecordEncoding = ParseError("unrecognized anchor record encoding")
	ErrUnserializablePayload      = InvalidError("payload cannot be serialized")
	ErrWrongNetworkForSigner      = ConfigurationError("signer key is for a different network")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AccountError) Error() string       { return string(e) }
func (e ConfigurationError) Error() string { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e LengthError) Error() string        { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ParseError) Error() string         { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e SubmissionError) Error() string    { return string(e) }

// determine the class of an error
func IsErrAccount(e error) bool       { _, ok := e.(AccountError); return ok }
func IsErrConfiguration(e error) bool { _, ok := e.(ConfigurationError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool        { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrParse(e error) bool         { _, ok := e.(ParseError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrSubmission(e error) bool    { _, ok := e.(SubmissionError); return ok }
