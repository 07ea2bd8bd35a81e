// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type OverflowError GenericError
type PermissionError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	AccountNotFound          = NotFoundError("account not found")
	AlreadyInitialised       = ExistsError("already initialised")
	AlreadyInitialized       = ExistsError("account already initialized")
	CertificateFileExists    = ExistsError("certificate file already exists")
	ConfigurationNotStruct   = InvalidError("configuration is not a struct pointer")
	ConfigurationNotTable    = InvalidError("configuration did not return a table")
	DuplicateDNA             = ExistsError("this DNA already exists, each Kwami must have unique DNA")
	InsufficientFunds        = OverflowError("insufficient funds")
	InvalidAmount            = InvalidError("invalid amount")
	InvalidAuthority         = InvalidError("invalid authority provided")
	InvalidBump              = InvalidError("invalid derivation bump")
	InvalidCount             = InvalidError("invalid count")
	InvalidDerivation        = PermissionError("signer seeds do not derive the expected address")
	InvalidDiscriminator     = InvalidError("invalid account discriminator")
	InvalidFingerprint       = InvalidError("invalid DNA fingerprint")
	InvalidIdentity          = InvalidError("invalid identity")
	InvalidInstructionId     = InvalidError("invalid instruction id")
	InvalidIpAddress         = InvalidError("invalid IP address")
	InvalidOwner             = PermissionError("invalid owner for this Kwami NFT")
	InvalidPrice             = InvalidError("invalid price value")
	InvalidPrivateKeyFile    = InvalidError("invalid private key file")
	InvalidPublicKeyFile     = InvalidError("invalid public key file")
	InvalidSignature         = PermissionError("invalid signature")
	InvalidSignatureCount    = InvalidError("invalid signature count")
	KeyFileAlreadyExists     = ExistsError("key file already exists")
	MathOverflow             = OverflowError("math operation overflow")
	MaxSupplyExceeded        = OverflowError("maximum supply exceeded")
	MintNotFound             = NotFoundError("mint not found")
	MissingParameters        = InvalidError("missing parameters")
	MissingSignature         = PermissionError("missing required signature")
	NameTooLong              = LengthError("name exceeds maximum length of 32 characters")
	NoSeeds                  = InvalidError("at least one seed is required")
	NotInitialised           = NotFoundError("not initialised")
	NotOffCurve              = InvalidError("derived address is on the ed25519 curve")
	RateLimiting             = ProcessError("rate limiting")
	RecordTooLong            = LengthError("record exceeds account size")
	RecordTruncated          = LengthError("record is truncated")
	RegistryFull             = OverflowError("DNA registry is full, maximum capacity reached")
	SeedTooLong              = LengthError("seed exceeds maximum length")
	SymbolTooLong            = LengthError("symbol exceeds maximum length of 10 characters")
	TooManySeeds             = InvalidError("too many seeds")
	TransactionAlreadyExists = ExistsError("transaction already exists")
	TransactionInUse         = ProcessError("transaction already in use")
	TransactionNotActive     = ProcessError("transaction is not active")
	TransactionNotFound      = NotFoundError("transaction not found")
	Unauthorized             = PermissionError("signer is not the authority")
	UndeclaredAccount        = ProcessError("account was not declared by the instruction")
	UnknownInstruction       = InvalidError("unknown instruction")
	UriTooLong               = LengthError("URI exceeds maximum length of 200 characters")
	WrongCollection          = PermissionError("Kwami NFT is not in this collection")
	WrongProgram             = InvalidError("instruction sent to the wrong program")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string     { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e OverflowError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrOverflow(e error) bool   { _, ok := e.(OverflowError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }

// IsValidation - caller supplied out of bounds input
func IsValidation(e error) bool {
	return IsErrInvalid(e) || IsErrLength(e)
}

// IsInvariant - the mutation would have violated a core invariant
func IsInvariant(e error) bool {
	return IsErrExists(e) || IsErrOverflow(e)
}

// IsAuthorization - the caller is not entitled to the mutation
func IsAuthorization(e error) bool {
	return IsErrPermission(e)
}
