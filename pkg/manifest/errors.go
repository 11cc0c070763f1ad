//
//  Copyright © Manetu Inc. All rights reserved.
//

package manifest

import (
	"fmt"
	"strings"
)

// Error is a single problem found in a Request.
type Error struct {
	// Rule is the zero-based rule index, or -1 for request-level problems.
	Rule    int
	Field   string
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	parts := []string{}
	if e.Rule >= 0 {
		parts = append(parts, fmt.Sprintf("rule %d", e.Rule))
	}
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field '%s'", e.Field))
	}

	context := ""
	if len(parts) > 0 {
		context = "in " + strings.Join(parts, " ") + ": "
	}

	msg := e.Message
	if msg == "" && e.Cause != nil {
		msg = e.Cause.Error()
	}
	return context + msg
}

// Unwrap exposes the underlying typed error, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Errors collects every problem found while building, so they can be
// reported together.
type Errors struct {
	Errors []*Error
}

// NewErrors creates an empty collection.
func NewErrors() *Errors {
	return &Errors{Errors: make([]*Error, 0)}
}

// Add appends a problem with a message.
func (es *Errors) Add(rule int, field, message string) {
	es.Errors = append(es.Errors, &Error{Rule: rule, Field: field, Message: message})
}

// AddCause appends a problem caused by err.
func (es *Errors) AddCause(rule int, field string, err error) {
	es.Errors = append(es.Errors, &Error{Rule: rule, Field: field, Cause: err})
}

// HasErrors returns true if any problem was recorded.
func (es *Errors) HasErrors() bool {
	return len(es.Errors) > 0
}

// Count returns the number of problems.
func (es *Errors) Count() int {
	return len(es.Errors)
}

// Error implements the error interface for the collection
func (es *Errors) Error() string {
	switch len(es.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return es.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("request invalid with %d errors:\n", len(es.Errors)))
	for i, err := range es.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Unwrap lets errors.As reach the individual typed causes.
func (es *Errors) Unwrap() []error {
	out := make([]error, 0, len(es.Errors))
	for _, e := range es.Errors {
		out = append(out, e)
	}
	return out
}
