package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyOwner          = errors.New("owner wallet address is required")
	ErrDelimiterInField    = errors.New("deed fields must not contain ',' (or '.' in Negeri)")
	ErrInvalidIDHex        = errors.New("idHex must be 6 hex digits (e.g., A1B2C3)")
	ErrInvalidTokenAddress = errors.New("tokenAddress must be a valid hex address")
	ErrEmptyPayload        = errors.New("encrypted payload is required")
	ErrEmptyImageReference = errors.New("image reference cannot be empty")
)
