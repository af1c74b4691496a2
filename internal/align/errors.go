// Copyright © 2024 Wei Shen <shenwei356@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package align

import "fmt"

// Kind classifies an Error.
type Kind byte

const (
	// InvalidInput means the caller gave the aligner arguments that can
	// never produce a valid alignment: a mismatched incentive length, a
	// sequence that already contains the gap byte, or a malformed
	// include-index set.
	InvalidInput Kind = iota
	// ResourceExhausted means the DP planes could not be allocated for
	// the requested dimensions.
	ResourceExhausted
	// Internal means traceback reached a pointer tag that isn't one of
	// M, I, J', or a plane whose step would move past row or column 0.
	// This is a contract violation and should never happen on
	// valid input; it carries enough state for a post-mortem.
	Internal
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case ResourceExhausted:
		return "ResourceExhausted"
	case Internal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// Error is the error type returned (InvalidInput, ResourceExhausted) or
// panicked (Internal) by the aligner.
type Error struct {
	Kind Kind
	Msg  string

	// Internal-only post-mortem state.
	I, J  int
	Plane byte
}

func (e *Error) Error() string {
	if e.Kind == Internal {
		return fmt.Sprintf("align: internal error at (i=%d, j=%d, plane=%q): %s", e.I, e.J, e.Plane, e.Msg)
	}
	return fmt.Sprintf("align: %s: %s", e.Kind, e.Msg)
}

func errInvalidInput(format string, args ...interface{}) *Error {
	return &Error{Kind: InvalidInput, Msg: fmt.Sprintf(format, args...)}
}

func errResourceExhausted(format string, args ...interface{}) *Error {
	return &Error{Kind: ResourceExhausted, Msg: fmt.Sprintf(format, args...)}
}

// panicInternal aborts on a traceback contract violation. It is never
// expected to fire on valid input.
func panicInternal(i, j int, plane byte, msg string) {
	panic(&Error{Kind: Internal, Msg: msg, I: i, J: j, Plane: plane})
}
