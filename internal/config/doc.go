// Package config assembles the deed-keeper settings.
//
// Sources are merged in this order, each overriding the non-zero fields of
// the ones before it:
//  0. Built-in defaults ([Defaults])
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The merged result is validated before use. The encryption key in
// particular must decode to 32 bytes. The entry point is
// [GetStructuredConfig].
package config
