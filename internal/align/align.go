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

// Package align implements the three-state, affine-gap, global pairwise
// aligner this module is built around: a Needleman-Wunsch variant with free
// terminal gaps and a position-specific gap incentive, built to reproduce
// the CRISPResso2 Cython reference implementation's traceback bit-for-bit.
package align

import (
	"math"
	"sync"
)

// pointer tags. The I/J naming is the reference implementation's own
// convention and is kept so the tie-break rules below read the same way the
// reference does: an I column consumes a read base and puts the gap in the
// reference; a J column consumes a reference base and puts the gap in the
// read.
const (
	ptrNone byte = iota
	ptrM
	ptrI
	ptrJ
)

const gapByte = '-'

// Result is an aligned pair of equal-length strings plus the match
// percentage, rounded to three decimals.
type Result struct {
	AlignedRef  []byte
	AlignedRead []byte
	MatchPct    float64
}

// Aligner holds the DP planes for one alignment at a time. It is meant to
// be reused across many alignments (see New/Recycle) so that repeated calls
// with similarly-sized sequences don't reallocate the six planes each time.
type Aligner struct {
	// M, I, J are the three score planes, each flattened row-major with
	// i (reference) outer and j (read) inner.
	m, i, j []int32

	// pm, pi, pj are the matching pointer planes: which predecessor
	// plane produced the score at each cell.
	pm, pi, pj []byte

	nI, nJ int // current |ref| and |read|; the grid is (nI+1) x (nJ+1)

	refOut, readOut []byte
}

var poolAligner = &sync.Pool{New: func() interface{} {
	return &Aligner{}
}}

// New returns an Aligner from the object pool.
func New() *Aligner {
	return poolAligner.Get().(*Aligner)
}

// Recycle returns an Aligner to the object pool for reuse.
func Recycle(a *Aligner) {
	if a != nil {
		poolAligner.Put(a)
	}
}

func (a *Aligner) grow(nI, nJ int) {
	n := (nI + 1) * (nJ + 1)
	if cap(a.m) < n {
		a.m = make([]int32, n)
		a.i = make([]int32, n)
		a.j = make([]int32, n)
		a.pm = make([]byte, n)
		a.pi = make([]byte, n)
		a.pj = make([]byte, n)
	} else {
		a.m = a.m[:n]
		a.i = a.i[:n]
		a.j = a.j[:n]
		a.pm = a.pm[:n]
		a.pi = a.pi[:n]
		a.pj = a.pj[:n]
	}
	a.nI, a.nJ = nI, nJ
}

// tryGrow allocates the DP planes for an (nI+1) x (nJ+1) grid, converting a
// runtime allocation failure into a ResourceExhausted error rather than
// letting the process die on an out-of-memory panic.
func (a *Aligner) tryGrow(nI, nJ int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errResourceExhausted("cannot allocate DP planes for a %dx%d grid: %v", nI+1, nJ+1, r)
		}
	}()
	a.grow(nI, nJ)
	return nil
}

func (a *Aligner) idx(i, j int) int {
	return i*(a.nJ+1) + j
}

// GlobalAlign runs one alignment on an Aligner taken from the package-level
// pool and returns it to the pool afterwards. Most callers that
// only need one alignment should use this instead of managing an Aligner
// themselves.
func GlobalAlign(matrix *Matrix, ref, read []byte, incentive []int32, gapOpen, gapExtend int32) (*Result, error) {
	a := New()
	defer Recycle(a)
	return a.Align(matrix, ref, read, incentive, gapOpen, gapExtend)
}

// Align runs the global alignment described in the package doc. ref and read
// must not already contain the gap byte. incentive must have length
// len(ref)+1.
func (a *Aligner) Align(matrix *Matrix, ref, read []byte, incentive []int32, gapOpen, gapExtend int32) (*Result, error) {
	if len(incentive) != len(ref)+1 {
		return nil, errInvalidInput("gap incentive length %d, want %d", len(incentive), len(ref)+1)
	}
	for _, b := range ref {
		if b == gapByte {
			return nil, errInvalidInput("reference already contains the gap byte")
		}
	}
	for _, b := range read {
		if b == gapByte {
			return nil, errInvalidInput("read already contains the gap byte")
		}
	}

	ref = upper(ref)
	read = upper(read)

	nI, nJ := len(ref), len(read)
	if nI == 0 && nJ == 0 {
		return &Result{AlignedRef: []byte{}, AlignedRead: []byte{}, MatchPct: 0}, nil
	}

	if err := a.tryGrow(nI, nJ); err != nil {
		return nil, err
	}

	a.fill(matrix, ref, read, incentive, gapOpen, gapExtend)

	refOut, readOut, matches := a.traceback(ref, read)

	alignedLen := len(refOut)
	var pct float64
	if alignedLen > 0 {
		pct = roundTo3(100 * float64(matches) / float64(alignedLen))
	}

	return &Result{AlignedRef: refOut, AlignedRead: readOut, MatchPct: pct}, nil
}

func upper(s []byte) []byte {
	out := make([]byte, len(s))
	for i, b := range s {
		if b >= 'a' && b <= 'z' {
			b -= 'a' - 'A'
		}
		out[i] = b
	}
	return out
}

func roundTo3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// max3 picks among (mc, jc, ic) using the tie-break cascade that is
// load-bearing for reproducing the reference traceback: compare M against
// J' first; the winner of that (or J' itself on a tie) is then compared
// against I; ties always fall through to the later-listed plane.
func max3(mc, jc, ic int32) (best int32, plane byte) {
	if mc > jc {
		if mc > ic {
			return mc, ptrM
		}
		return ic, ptrI
	}
	if jc > ic {
		return jc, ptrJ
	}
	return ic, ptrI
}

func (a *Aligner) fill(matrix *Matrix, ref, read []byte, incentive []int32, gapOpen, gapExtend int32) {
	nI, nJ := a.nI, a.nJ
	sMin := gapOpen * int32(nJ) * int32(nI)

	// boundary: (0,0) and the first row/column.
	a.m[a.idx(0, 0)] = 0
	for j := 1; j <= nJ; j++ {
		a.m[a.idx(0, j)] = sMin
		a.pm[a.idx(0, j)] = ptrI
		a.i[a.idx(0, j)] = gapExtend*int32(j) + incentive[0]
		a.pi[a.idx(0, j)] = ptrI
		a.j[a.idx(0, j)] = sMin
	}
	for i := 1; i <= nI; i++ {
		a.m[a.idx(i, 0)] = sMin
		a.pm[a.idx(i, 0)] = ptrJ
		a.j[a.idx(i, 0)] = gapExtend*int32(i) + incentive[0]
		a.pj[a.idx(i, 0)] = ptrJ
		a.i[a.idx(i, 0)] = sMin
	}

	// interior.
	for i := 1; i < nI; i++ {
		for j := 1; j < nJ; j++ {
			a.cell(matrix, ref, read, incentive, gapOpen, gapExtend, i, j, gapOpen)
		}
	}

	// last column: j == nJ, i = 1..nI-1. Terminal gaps only cost
	// extension, so the opening transition uses gapExtend here. When
	// nJ == 0 this column coincides with the already-initialized
	// boundary column and must not be recomputed.
	if nJ > 0 {
		for i := 1; i < nI; i++ {
			a.cell(matrix, ref, read, incentive, gapOpen, gapExtend, i, nJ, gapExtend)
		}
	}

	// last row: i == nI, j = 1..nJ (this also covers the (nI,nJ) corner).
	// When nI == 0 this row coincides with the already-initialized
	// boundary row and must not be recomputed.
	if nI > 0 {
		for j := 1; j <= nJ; j++ {
			a.cell(matrix, ref, read, incentive, gapOpen, gapExtend, nI, j, gapExtend)
		}
	}
}

// cell fills M, I and J at (i, j), 1 <= i <= nI, 1 <= j <= nJ. open is the
// gap-opening penalty to use for this cell: gapOpen in the interior,
// gapExtend on the free-terminal last row/column.
func (a *Aligner) cell(matrix *Matrix, ref, read []byte, incentive []int32, gapOpen, gapExtend int32, i, j int, open int32) {
	// I[i,j]: gap in the reference (read base consumed), opened/extended
	// along j.
	mPrevJ := a.m[a.idx(i, j-1)]
	iPrevJ := a.i[a.idx(i, j-1)]
	openI := open + mPrevJ
	extI := gapExtend + iPrevJ
	var iScore int32
	var iPlane byte
	if extI >= openI {
		iScore, iPlane = extI, ptrI
	} else {
		iScore, iPlane = openI, ptrM
	}
	iScore += incentive[i]
	a.i[a.idx(i, j)] = iScore
	a.pi[a.idx(i, j)] = iPlane

	// J[i,j]: gap in the read (reference base consumed), opened/extended
	// along i. The incentive is added only on the opening (M -> J)
	// transition, never on extension, so it is never double-counted across
	// a run of read-gap columns that crosses the incentive position.
	mPrevI := a.m[a.idx(i-1, j)]
	jPrevI := a.j[a.idx(i-1, j)]
	openJ := open + mPrevI + incentive[i-1]
	extJ := gapExtend + jPrevI
	var jScore int32
	var jPlane byte
	if extJ >= openJ {
		jScore, jPlane = extJ, ptrJ
	} else {
		jScore, jPlane = openJ, ptrM
	}
	a.j[a.idx(i, j)] = jScore
	a.pj[a.idx(i, j)] = jPlane

	// M[i,j]: match/mismatch column, tie-broken M > J > I.
	mc := a.m[a.idx(i-1, j-1)]
	jc := a.j[a.idx(i-1, j-1)]
	ic := a.i[a.idx(i-1, j-1)]
	best, plane := max3(mc, jc, ic)
	a.m[a.idx(i, j)] = best + matrix.score(ref[i-1], read[j-1])
	a.pm[a.idx(i, j)] = plane
}

func (a *Aligner) traceback(ref, read []byte) (refOut, readOut []byte, matches int) {
	nI, nJ := a.nI, a.nJ
	i, j := nI, nJ

	// At i == 0 (reference exhausted) only the I-chain is a reachable
	// path, and at j == 0 (read exhausted) only the J-chain is: M and
	// the other plane both require both indices to be >= 1 to step from.
	// This matters because S_min = gapOpen * |J| * |I| degenerates to 0
	// whenever |I| or |J| is 0, which would otherwise tie with a real
	// plane's score at the corner and send max3 down an unreachable
	// pointer chain. Away from this corner the boundary pointer planes
	// (pm/pi/pj at row/column 0, set in fill's boundary step) already
	// force the same outcome, so this only needs handling here.
	var plane byte
	switch {
	case i == 0 && j > 0:
		plane = ptrI
	case j == 0 && i > 0:
		plane = ptrJ
	default:
		mEnd := a.m[a.idx(i, j)]
		iEnd := a.i[a.idx(i, j)]
		jEnd := a.j[a.idx(i, j)]
		_, plane = max3(mEnd, jEnd, iEnd)
	}

	if cap(a.refOut) == 0 {
		a.refOut = make([]byte, 0, nI+nJ)
		a.readOut = make([]byte, 0, nI+nJ)
	}
	refOut = a.refOut[:0]
	readOut = a.readOut[:0]

	for i > 0 || j > 0 {
		switch plane {
		case ptrM:
			if i < 1 || j < 1 {
				panicInternal(i, j, plane, "M traceback step with i or j already at 0")
			}
			rb, qb := ref[i-1], read[j-1]
			refOut = append(refOut, rb)
			readOut = append(readOut, qb)
			if rb == qb {
				matches++
			}
			next := a.pm[a.idx(i, j)]
			i--
			j--
			plane = next
		case ptrJ:
			if i < 1 {
				panicInternal(i, j, plane, "J traceback step with i already at 0")
			}
			refOut = append(refOut, ref[i-1])
			readOut = append(readOut, gapByte)
			next := a.pj[a.idx(i, j)]
			i--
			plane = next
		case ptrI:
			if j < 1 {
				panicInternal(i, j, plane, "I traceback step with j already at 0")
			}
			refOut = append(refOut, gapByte)
			readOut = append(readOut, read[j-1])
			next := a.pi[a.idx(i, j)]
			j--
			plane = next
		default:
			panicInternal(i, j, plane, "traceback pointer outside {M, I, J}")
		}
	}

	reverse(refOut)
	reverse(readOut)

	a.refOut = refOut
	a.readOut = readOut

	out1 := make([]byte, len(refOut))
	out2 := make([]byte, len(readOut))
	copy(out1, refOut)
	copy(out2, readOut)
	return out1, out2, matches
}

func reverse(b []byte) {
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
}
