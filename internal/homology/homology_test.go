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

package homology

import "testing"

func TestFractionIdentical(t *testing.T) {
	if got := Fraction([]byte("ATCGATCG"), []byte("ATCGATCG")); got != 1 {
		t.Fatalf("got %v, want 1", got)
	}
}

func TestFractionNoMatches(t *testing.T) {
	if got := Fraction([]byte("AAAAAAAAAA"), []byte("TTTTTTTTTT")); got != 0 {
		t.Fatalf("got %v, want 0", got)
	}
}

func TestFractionPartial(t *testing.T) {
	// ATCGATCG vs ATCTATCG: one mismatch out of 8.
	got := Fraction([]byte("ATCGATCG"), []byte("ATCTATCG"))
	want := 7.0 / 8.0
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestFractionTruncatesToShorter(t *testing.T) {
	// Only the first 4 columns are compared; the extra ref tail is ignored.
	got := Fraction([]byte("ATCGAAAA"), []byte("ATCG"))
	if got != 1 {
		t.Fatalf("got %v, want 1", got)
	}
}

func TestFractionEmptyInputs(t *testing.T) {
	if got := Fraction(nil, nil); got != 0 {
		t.Fatalf("got %v, want 0 for two empty inputs", got)
	}
}
