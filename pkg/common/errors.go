//
//  Copyright © Manetu Inc. All rights reserved.
//

// Package common provides shared types and utilities used across the
// rolegen packages.
//
// # Error Handling
//
// Every failure raised by the resolver and the vocabulary is one of the typed
// errors below. They are returned, never panicked, and callers match them with
// [errors.As] or the Is* helpers:
//
//	v, err := resolver.ResolveRequired("ROLE_KIND")
//	if common.IsMissingRequiredConfig(err) {
//	    // fall back or abort
//	}
package common

import (
	"errors"
	"fmt"
)

// MissingRequiredConfigError is returned when a required configuration key
// could not be resolved from any source.
type MissingRequiredConfigError struct {
	// Key is the configuration key as requested by the caller.
	Key string
}

// Error implements the error interface.
func (e *MissingRequiredConfigError) Error() string {
	return fmt.Sprintf("required configuration value %s is not defined", e.Key)
}

// UnknownGroupError is returned when a named group label is not defined for
// the requested axis family.
type UnknownGroupError struct {
	// Family is the axis the group was looked up under (e.g. "resource").
	Family string
	// Label is the group label as requested by the caller.
	Label string
}

// Error implements the error interface.
func (e *UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown %s group '%s'", e.Family, e.Label)
}

// InvalidValueError is returned when a value is not a member of an axis.
type InvalidValueError struct {
	Axis  string
	Value string
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s value %q", e.Axis, e.Value)
}

// NewMissingRequiredConfig creates a [MissingRequiredConfigError] for key.
func NewMissingRequiredConfig(key string) *MissingRequiredConfigError {
	return &MissingRequiredConfigError{Key: key}
}

// NewUnknownGroup creates an [UnknownGroupError].
func NewUnknownGroup(family, label string) *UnknownGroupError {
	return &UnknownGroupError{Family: family, Label: label}
}

// NewInvalidValue creates an [InvalidValueError].
func NewInvalidValue(axis, value string) *InvalidValueError {
	return &InvalidValueError{Axis: axis, Value: value}
}

// IsMissingRequiredConfig reports whether err wraps a [MissingRequiredConfigError].
func IsMissingRequiredConfig(err error) bool {
	var target *MissingRequiredConfigError
	return errors.As(err, &target)
}

// IsUnknownGroup reports whether err wraps an [UnknownGroupError].
func IsUnknownGroup(err error) bool {
	var target *UnknownGroupError
	return errors.As(err, &target)
}

// IsInvalidValue reports whether err wraps an [InvalidValueError].
func IsInvalidValue(err error) bool {
	var target *InvalidValueError
	return errors.As(err, &target)
}
