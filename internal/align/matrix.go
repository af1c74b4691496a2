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

// Penalties holds the four substitution scores a Matrix is built from.
// Match is the reward for identical canonical bases; the other three are
// usually negative.
type Penalties struct {
	Match     int32
	Mismatch  int32
	NMismatch int32
	NMatch    int32
}

// DefaultPenalties mirrors CRISPResso2's EDNAFULL-like defaults.
var DefaultPenalties = Penalties{
	Match:     5,
	Mismatch:  -4,
	NMismatch: -2,
	NMatch:    -1,
}

// Matrix is a dense substitution-score table indexed by raw byte code, so
// that scoring a column never needs to translate a base into a smaller
// alphabet index. It is built once and shared read-only across alignments.
type Matrix struct {
	Score [256][256]int32
}

var canonicalBases = [4]byte{'A', 'T', 'C', 'G'}

// BuildMatrix fills a 256x256 table for the canonical bases {A,T,C,G} and
// their pairings with N. Every other cell, including any byte outside
// {A,T,C,G,N}, is left at zero: an unrecognized base degrades to neutral
// rather than trapping.
func BuildMatrix(p Penalties) *Matrix {
	m := &Matrix{}
	for _, a := range canonicalBases {
		for _, b := range canonicalBases {
			if a == b {
				m.Score[a][b] = p.Match
			} else {
				m.Score[a][b] = p.Mismatch
			}
		}
		m.Score[a]['N'] = p.NMismatch
		m.Score['N'][a] = p.NMismatch
	}
	m.Score['N']['N'] = p.NMatch
	return m
}

// score looks up the substitution score for a pair of raw bytes.
func (m *Matrix) score(a, b byte) int32 {
	return m.Score[a][b]
}
