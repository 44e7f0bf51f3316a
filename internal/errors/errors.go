// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements functions to manipulate codec errors.
//
// The decoding loops of this repository are tight and deeply nested, so the
// internal code reports failures by panicking with an Error value. Public
// entry points must defer Recover so that these panics never cross the API.
// Recover only swallows panics raised through Panic; runtime errors and any
// other values are re-raised untouched.
package errors

import (
	stderrors "errors"
	"strings"
)

const (
	// Unknown indicates that there is no classification for this error.
	Unknown = iota

	// Internal indicates that this error is due to an internal bug.
	// Users should file a issue report if this type of error is encountered.
	Internal

	// Invalid indicates that this error is due to the user misusing the API
	// and is indicative of a bug on the user's part.
	Invalid

	// Deprecated indicates the use of a deprecated and unsupported feature.
	Deprecated

	// Corrupted indicates that the input stream is corrupted.
	Corrupted

	// Closed indicates that the handlers are closed.
	Closed

	// Unsupported indicates that the input is valid but cannot be represented
	// under the current configuration.
	Unsupported
)

var codeMap = map[int]string{
	Unknown:     "unknown error",
	Internal:    "internal error",
	Invalid:     "invalid argument",
	Deprecated:  "deprecated format",
	Corrupted:   "corrupted input",
	Closed:      "closed handler",
	Unsupported: "unsupported input",
}

type Error struct {
	Code int    // The error type
	Pkg  string // Name of the package where the error originated
	Msg  string // Descriptive message about the error (optional)
}

func (e Error) Error() string {
	var ss []string
	for _, s := range []string{e.Pkg, codeMap[e.Code], e.Msg} {
		if s != "" {
			ss = append(ss, s)
		}
	}
	return strings.Join(ss, ": ")
}

// Is reports whether target is an Error from the same package with the same
// code. The message is ignored so that detailed errors match their sentinels.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	return ok && t.Code == e.Code && t.Pkg == e.Pkg
}

func (e Error) IsInternal() bool    { return e.Code == Internal }
func (e Error) IsInvalid() bool     { return e.Code == Invalid }
func (e Error) IsDeprecated() bool  { return e.Code == Deprecated }
func (e Error) IsCorrupted() bool   { return e.Code == Corrupted }
func (e Error) IsClosed() bool      { return e.Code == Closed }
func (e Error) IsUnsupported() bool { return e.Code == Unsupported }

func IsInternal(err error) bool    { return isCode(err, Internal) }
func IsInvalid(err error) bool     { return isCode(err, Invalid) }
func IsDeprecated(err error) bool  { return isCode(err, Deprecated) }
func IsCorrupted(err error) bool   { return isCode(err, Corrupted) }
func IsClosed(err error) bool      { return isCode(err, Closed) }
func IsUnsupported(err error) bool { return isCode(err, Unsupported) }

func isCode(err error, code int) bool {
	var cerr Error
	return stderrors.As(err, &cerr) && cerr.Code == code
}

// errWrap is used by Panic and Recover to ensure that only errors raised by
// Panic are recovered by Recover.
type errWrap struct{ e *error }

func Recover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case errWrap:
		*err = *ex.e
	default:
		panic(ex)
	}
}

func Panic(err error) {
	panic(errWrap{&err})
}
