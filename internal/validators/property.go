package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-deed-keeper/internal/canonical"
	"github.com/MKhiriev/go-deed-keeper/internal/identifier"
	"github.com/MKhiriev/go-deed-keeper/models"
)

// Field name constants used to restrict Validate to a subset of rules.
const (
	// FieldOwner requires a non-empty owner wallet address.
	FieldOwner = "owner"

	// FieldDelimiters rejects deed fields that would make the canonical
	// plaintext ambiguous.
	FieldDelimiters = "delimiters"

	// FieldIDHex requires a 6-hex-digit identifier.
	FieldIDHex = "id_hex"

	// FieldTokenAddress requires an empty or 0x-prefixed 20-byte hex address.
	FieldTokenAddress = "token_address"

	// FieldImages rejects blank image references.
	FieldImages = "images"

	// FieldEncrypted requires a non-empty sealed payload.
	FieldEncrypted = "encrypted"
)

var tokenAddressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// PropertyValidator validates deed fields and property requests.
type PropertyValidator struct {
}

func NewPropertyValidator() Validator {
	return &PropertyValidator{}
}

func (v *PropertyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.DeedFields:
		return v.validateDeedFields(ctx, value, fields...)
	case *models.DeedFields:
		return v.validateDeedFields(ctx, *value, fields...)

	case models.ConfirmRequest:
		return v.validateConfirmRequest(ctx, value, fields...)
	case *models.ConfirmRequest:
		return v.validateConfirmRequest(ctx, *value, fields...)

	case models.TokenRequest:
		return v.validateTokenRequest(ctx, value, fields...)
	case *models.TokenRequest:
		return v.validateTokenRequest(ctx, *value, fields...)

	case models.DetailsRequest:
		return v.validateDetailsRequest(ctx, value, fields...)
	case *models.DetailsRequest:
		return v.validateDetailsRequest(ctx, *value, fields...)

	case models.OpenPayloadRequest:
		return v.validateOpenPayloadRequest(ctx, value, fields...)
	case *models.OpenPayloadRequest:
		return v.validateOpenPayloadRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// IsTokenAddress reports whether s is a 0x-prefixed 40-hex-digit address.
func IsTokenAddress(s string) bool {
	return tokenAddressPattern.MatchString(s)
}

func (v *PropertyValidator) validateDeedFields(ctx context.Context, deed models.DeedFields, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwner, FieldDelimiters}
	}

	for _, f := range fields {
		switch f {
		case FieldOwner:
			if strings.TrimSpace(deed.Owner) == "" {
				return ErrEmptyOwner
			}
		case FieldDelimiters:
			if canonical.ContainsDelimiter(deed) {
				return ErrDelimiterInField
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PropertyValidator) validateConfirmRequest(ctx context.Context, request models.ConfirmRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIDHex}
	}

	for _, f := range fields {
		switch f {
		case FieldIDHex:
			if !identifier.IsValid(strings.TrimSpace(request.IDHex)) {
				return ErrInvalidIDHex
			}
		case FieldOwner:
			if strings.TrimSpace(request.Owner) == "" {
				return ErrEmptyOwner
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PropertyValidator) validateTokenRequest(ctx context.Context, request models.TokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIDHex, FieldTokenAddress}
	}

	for _, f := range fields {
		switch f {
		case FieldIDHex:
			if !identifier.IsValid(strings.TrimSpace(request.IDHex)) {
				return ErrInvalidIDHex
			}
		case FieldTokenAddress:
			addr := strings.TrimSpace(request.TokenAddress)
			if addr != "" && !IsTokenAddress(addr) {
				return ErrInvalidTokenAddress
			}
		case FieldOwner:
			if strings.TrimSpace(request.Owner) == "" {
				return ErrEmptyOwner
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PropertyValidator) validateDetailsRequest(ctx context.Context, request models.DetailsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIDHex, FieldImages}
	}

	for _, f := range fields {
		switch f {
		case FieldIDHex:
			if !identifier.IsValid(strings.TrimSpace(request.IDHex)) {
				return ErrInvalidIDHex
			}
		case FieldImages:
			for _, img := range request.Images {
				if strings.TrimSpace(img) == "" {
					return ErrEmptyImageReference
				}
			}
		case FieldOwner:
			if strings.TrimSpace(request.Owner) == "" {
				return ErrEmptyOwner
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PropertyValidator) validateOpenPayloadRequest(ctx context.Context, request models.OpenPayloadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEncrypted}
	}

	for _, f := range fields {
		switch f {
		case FieldEncrypted:
			if strings.TrimSpace(request.Encrypted) == "" {
				return ErrEmptyPayload
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
