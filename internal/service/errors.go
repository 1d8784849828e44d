package service

import "errors"

var (
	ErrVersionIsNotSpecified       = errors.New("app version is not specified")
	ErrEncryptionKeyIsNotSpecified = errors.New("encryption key is not specified")

	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrIdentifierUnavailable = errors.New("could not reserve a free identifier")
)
