// Copyright 2026 The TripDesk Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package apperr

import (
	"errors"
	"fmt"
)

// Category classifies a failure for the request boundary.
type Category string

const (
	CategoryNotFound     Category = "not_found"
	CategoryForbidden    Category = "forbidden"
	CategoryConflict     Category = "conflict"
	CategoryInvalidInput Category = "invalid_input"
	CategoryInternal     Category = "internal"
)

// Error is a categorised, user-presentable failure. Validators and services
// raise it up to the transport layer, which maps the category to a status code.
type Error struct {
	Category Category
	Message  string
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound creates a not-found error.
func NotFound(format string, args ...any) *Error {
	return &Error{Category: CategoryNotFound, Message: fmt.Sprintf(format, args...)}
}

// Forbidden creates a permission-denied error.
func Forbidden(format string, args ...any) *Error {
	return &Error{Category: CategoryForbidden, Message: fmt.Sprintf(format, args...)}
}

// Conflict creates a state-conflict error (duplicates, overlaps).
func Conflict(format string, args ...any) *Error {
	return &Error{Category: CategoryConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidInput creates a malformed-input error.
func InvalidInput(format string, args ...any) *Error {
	return &Error{Category: CategoryInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure without exposing its detail to clients.
func Internal(msg string, err error) *Error {
	return &Error{Category: CategoryInternal, Message: msg, Err: err}
}

// CategoryOf extracts the category from an error chain. Errors that are not
// apperr.Error are treated as internal.
func CategoryOf(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return CategoryInternal
}

// MessageOf extracts the user-visible message from an error chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}

// IsCategory reports whether err carries the given category.
func IsCategory(err error, c Category) bool {
	return CategoryOf(err) == c
}
