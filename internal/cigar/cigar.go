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

// Package cigar turns an already-computed global alignment (a pair of
// equal-length byte slices, gaps included) into a CIGAR string and summary
// stats, the same record/merge/summarize pipeline the teacher's wavefront
// aligner used for its own backtrace output, adapted here to run over a
// finished alignment instead of a live backtrace.
package cigar

import (
	"bytes"
	"strconv"
	"sync"
)

const gapByte = '-'

// Record is a single run-length-encoded CIGAR operation: 'M' (match), 'X'
// (mismatch), 'I' (insertion, gap in the reference) or 'D' (deletion, gap
// in the read).
type Record struct {
	N  uint32
	Op byte
}

// CIGAR holds the run-length-encoded operations for one alignment plus
// summary stats over its aligned region.
type CIGAR struct {
	Ops []*Record

	AlignLen   uint32
	Matches    uint32
	Mismatches uint32
	Gaps       uint32
	GapRegions uint32
}

var poolCIGAR = &sync.Pool{New: func() interface{} {
	return &CIGAR{Ops: make([]*Record, 0, 64)}
}}

var poolRecord = &sync.Pool{New: func() interface{} { return &Record{} }}

// New returns a CIGAR from the object pool.
func New() *CIGAR {
	c := poolCIGAR.Get().(*CIGAR)
	c.reset()
	return c
}

// Recycle returns a CIGAR to the object pool.
func Recycle(c *CIGAR) {
	if c != nil {
		poolCIGAR.Put(c)
	}
}

func (c *CIGAR) reset() {
	for _, r := range c.Ops {
		poolRecord.Put(r)
	}
	c.Ops = c.Ops[:0]
	c.AlignLen, c.Matches, c.Mismatches, c.Gaps, c.GapRegions = 0, 0, 0, 0, 0
}

func (c *CIGAR) add(op byte) {
	if n := len(c.Ops); n > 0 && c.Ops[n-1].Op == op {
		c.Ops[n-1].N++
		return
	}
	r := poolRecord.Get().(*Record)
	r.Op, r.N = op, 1
	c.Ops = append(c.Ops, r)
}

// FromAligned builds a CIGAR by scanning a finished alignment column by
// column. alnRef and alnRead must be equal length, as GlobalAlign always
// produces.
func FromAligned(alnRef, alnRead []byte) *CIGAR {
	c := New()
	for i := range alnRef {
		r, q := alnRef[i], alnRead[i]
		switch {
		case r == gapByte:
			c.add('I')
		case q == gapByte:
			c.add('D')
		case r == q:
			c.add('M')
		default:
			c.add('X')
		}
	}
	c.summarize()
	return c
}

func (c *CIGAR) summarize() {
	var alen, matches, mismatches, gaps, gapRegions uint32
	for _, op := range c.Ops {
		alen += op.N
		switch op.Op {
		case 'M':
			matches += op.N
		case 'X':
			mismatches += op.N
		case 'I', 'D':
			gaps += op.N
			gapRegions++
		}
	}
	c.AlignLen, c.Matches, c.Mismatches, c.Gaps, c.GapRegions = alen, matches, mismatches, gaps, gapRegions
}

// String returns the CIGAR string, e.g. "4M1I4M".
func (c *CIGAR) String() string {
	buf := poolBuf.Get().(*bytes.Buffer)
	buf.Reset()
	for _, op := range c.Ops {
		buf.WriteString(strconv.Itoa(int(op.N)))
		buf.WriteByte(op.Op)
	}
	s := buf.String()
	poolBuf.Put(buf)
	return s
}

var poolBuf = &sync.Pool{New: func() interface{} { return new(bytes.Buffer) }}
