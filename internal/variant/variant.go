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

// Package variant turns an aligned reference/read pair into a structured
// report of insertions, deletions and substitutions, partitioned into an
// unfiltered view and a view windowed to a caller-supplied set of reference
// coordinates.
package variant

import "fmt"

// Error is returned by FindVariants on malformed input: unequal-length
// strings or a gap-vs-gap column, both of which violate an aligner
// invariant that should never reach this package on valid input.
type Error struct {
	Msg string
}

func (e *Error) Error() string { return "variant: InvalidInput: " + e.Msg }

func errInvalidInput(format string, args ...interface{}) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}

const gapByte = '-'

// Coord is a half-open reference-coordinate interval [Start, End).
type Coord struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// IndexSet is the inclusion window: a set of reference coordinates used to
// partition variants into windowed vs. all.
type IndexSet map[int]struct{}

// NewIndexSet builds an IndexSet from individual coordinates.
func NewIndexSet(vals ...int) IndexSet {
	s := make(IndexSet, len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// NewIndexSetFromRanges builds an IndexSet covering every coordinate in each
// half-open [start, end) range.
func NewIndexSetFromRanges(ranges []Coord) IndexSet {
	s := make(IndexSet)
	for _, r := range ranges {
		for k := r.Start; k < r.End; k++ {
			s[k] = struct{}{}
		}
	}
	return s
}

// Has reports whether k is in the set.
func (s IndexSet) Has(k int) bool {
	_, ok := s[k]
	return ok
}

func (s IndexSet) hasBoth(a, b int) bool {
	return s.Has(a) && s.Has(b)
}

func (s IndexSet) intersectsRange(start, end int) bool {
	for k := start; k < end; k++ {
		if s.Has(k) {
			return true
		}
	}
	return false
}

// Report is the full variant report for an aligned pair: six parallel,
// reference-coordinate-indexed collections, each in an unfiltered ("all")
// flavor and a windowed flavor restricted to IndexSet membership.
type Report struct {
	InsertionPositions   []int   `json:"insertion_positions"`
	InsertionCoordinates []Coord `json:"insertion_coordinates"`
	InsertionSizes       []int   `json:"insertion_sizes"`

	InsertionPositionsWindow   []int   `json:"insertion_positions_window"`
	InsertionCoordinatesWindow []Coord `json:"insertion_coordinates_window"`
	InsertionSizesWindow       []int   `json:"insertion_sizes_window"`

	DeletionPositions   []int   `json:"deletion_positions"`
	DeletionCoordinates []Coord `json:"deletion_coordinates"`
	DeletionSizes       []int   `json:"deletion_sizes"`

	DeletionPositionsWindow   []int   `json:"deletion_positions_window"`
	DeletionCoordinatesWindow []Coord `json:"deletion_coordinates_window"`
	DeletionSizesWindow       []int   `json:"deletion_sizes_window"`

	SubstitutionPositions []int  `json:"substitution_positions"`
	SubstitutionValues    []byte `json:"substitution_values"`

	SubstitutionPositionsWindow []int  `json:"substitution_positions_window"`
	SubstitutionValuesWindow    []byte `json:"substitution_values_window"`

	// RefPositions maps every aligned column to the reference coordinate
	// it corresponds to. An insertion column (aln_ref[c] == '-') stores
	// -idx, or -1 at the leading edge where idx == 0.
	RefPositions []int `json:"ref_positions"`

	InsertionN    int `json:"insertion_n"`
	DeletionN     int `json:"deletion_n"`
	SubstitutionN int `json:"substitution_n"`
}

// FindVariants runs the single-pass scan described in the package doc.
// alnRef and alnRead must be equal length and must never both be the gap
// byte at the same column.
func FindVariants(alnRef, alnRead []byte, include IndexSet) (*Report, error) {
	if len(alnRef) != len(alnRead) {
		return nil, errInvalidInput("aligned lengths differ: %d vs %d", len(alnRef), len(alnRead))
	}
	if include == nil {
		include = IndexSet{}
	}

	n := len(alnRef)
	r := &Report{RefPositions: make([]int, n)}

	idx := 0
	startInsertion := -1
	insSize := 0
	startDeletion := -1

	for c := 0; c < n; c++ {
		refB, readB := alnRef[c], alnRead[c]
		if refB == gapByte && readB == gapByte {
			return nil, errInvalidInput("column %d is gap-vs-gap", c)
		}

		if refB != gapByte {
			r.RefPositions[c] = idx

			if refB != readB && readB != gapByte && readB != 'N' {
				r.SubstitutionPositions = append(r.SubstitutionPositions, idx)
				r.SubstitutionValues = append(r.SubstitutionValues, readB)
				if include.Has(idx) {
					r.SubstitutionPositionsWindow = append(r.SubstitutionPositionsWindow, idx)
					r.SubstitutionValuesWindow = append(r.SubstitutionValuesWindow, readB)
				}
			}

			if startInsertion != -1 {
				coord := Coord{Start: startInsertion, End: idx}
				r.InsertionPositions = append(r.InsertionPositions, startInsertion)
				r.InsertionCoordinates = append(r.InsertionCoordinates, coord)
				r.InsertionSizes = append(r.InsertionSizes, insSize)
				if include.hasBoth(startInsertion, idx) {
					r.InsertionPositionsWindow = append(r.InsertionPositionsWindow, startInsertion)
					r.InsertionCoordinatesWindow = append(r.InsertionCoordinatesWindow, coord)
					r.InsertionSizesWindow = append(r.InsertionSizesWindow, insSize)
				}
				startInsertion = -1
			}

			idx++
			insSize = 0
		} else {
			if idx > 0 {
				r.RefPositions[c] = -idx
			} else {
				r.RefPositions[c] = -1
			}

			// Note: an insertion column before any reference base has
			// been consumed sets startInsertion to idx-1 == -1, the
			// same value used to mean "no insertion open". A leading
			// insertion is therefore never closed or counted. This
			// matches the reference algorithm's own pseudocode
			// literally and is preserved rather than patched.
			if startInsertion == -1 {
				startInsertion = idx - 1
			}
			insSize++
		}

		if readB == gapByte {
			if startDeletion == -1 {
				startDeletion = r.RefPositions[c]
			}
		} else if startDeletion != -1 {
			end := r.RefPositions[c]
			r.closeDeletion(startDeletion, end, include)
			startDeletion = -1
		}
	}

	if startDeletion != -1 {
		r.closeDeletion(startDeletion, r.RefPositions[n-1], include)
	}

	r.InsertionN = sum(r.InsertionSizes)
	r.DeletionN = sum(r.DeletionSizes)
	r.SubstitutionN = len(r.SubstitutionPositions)

	return r, nil
}

func (r *Report) closeDeletion(start, end int, include IndexSet) {
	coord := Coord{Start: start, End: end}
	r.DeletionPositions = append(r.DeletionPositions, start)
	r.DeletionCoordinates = append(r.DeletionCoordinates, coord)
	r.DeletionSizes = append(r.DeletionSizes, end-start)
	if include.intersectsRange(start, end) {
		r.DeletionPositionsWindow = append(r.DeletionPositionsWindow, start)
		r.DeletionCoordinatesWindow = append(r.DeletionCoordinatesWindow, coord)
		r.DeletionSizesWindow = append(r.DeletionSizesWindow, end-start)
	}
}

func sum(vals []int) int {
	total := 0
	for _, v := range vals {
		total += v
	}
	return total
}
