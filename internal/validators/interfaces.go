// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks deed-keeper requests before they reach the
// registry: deed fields, property identifiers and owner addresses.
package validators

import "context"

// Validator checks a request value. The optional names narrow the check to
// the listed fields; with none given the request type's default set applies.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
