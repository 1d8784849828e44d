package canonical

import "errors"

// ErrMalformedPlaintext is returned by [Decode] when the input does not have
// 7 comma-separated segments or the location segment lacks a period.
var ErrMalformedPlaintext = errors.New("malformed canonical plaintext")
