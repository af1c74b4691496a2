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

// Package bench wires the CLI's --profile flag to the pkg/profile CPU and
// memory profilers, the same ones the standalone benchmark binary used.
package bench

import "github.com/pkg/profile"

// Start begins profiling in the given mode ("cpu" or "mem") and returns a
// func that stops it and flushes the profile to the current directory. An
// unrecognized mode is an error rather than a silent no-op.
func Start(mode string) (func(), error) {
	var p interface {
		Stop()
	}

	switch mode {
	case "cpu":
		p = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	case "mem":
		p = profile.Start(profile.MemProfile, profile.ProfilePath("."))
	default:
		return nil, &Error{Msg: "unrecognized profile mode: " + mode}
	}

	return p.Stop, nil
}

// Error reports an invalid profiling request.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "bench: " + e.Msg }
