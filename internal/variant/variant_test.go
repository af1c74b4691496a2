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

package variant

import "testing"

func TestFindVariantsInsertion(t *testing.T) {
	// S3: read=ATCGAATCG, ref=ATCGATCG.
	alnRef := []byte("ATCG-ATCG")
	alnRead := []byte("ATCGAATCG")

	r, err := FindVariants(alnRef, alnRead, nil)
	if err != nil {
		t.Fatalf("FindVariants: %v", err)
	}
	if len(r.InsertionCoordinates) != 1 {
		t.Fatalf("got %d insertions, want 1", len(r.InsertionCoordinates))
	}
	// start is the reference coordinate immediately to the left of the
	// gap, end immediately to the right.
	got := r.InsertionCoordinates[0]
	if got != (Coord{Start: 3, End: 4}) {
		t.Fatalf("insertion coordinates = %+v, want {3 4}", got)
	}
	if r.InsertionSizes[0] != 1 {
		t.Fatalf("insertion size = %d, want 1", r.InsertionSizes[0])
	}
	if r.InsertionN != 1 {
		t.Fatalf("insertion_n = %d, want 1", r.InsertionN)
	}
	if len(r.SubstitutionPositions) != 0 {
		t.Fatalf("unexpected substitutions: %v", r.SubstitutionPositions)
	}
}

func TestFindVariantsDeletion(t *testing.T) {
	// S4: read=ATCGTCG, ref=ATCGATCG.
	alnRef := []byte("ATCGATCG")
	alnRead := []byte("ATCG-TCG")

	r, err := FindVariants(alnRef, alnRead, nil)
	if err != nil {
		t.Fatalf("FindVariants: %v", err)
	}
	if len(r.DeletionCoordinates) != 1 {
		t.Fatalf("got %d deletions, want 1", len(r.DeletionCoordinates))
	}
	if got := r.DeletionCoordinates[0]; got != (Coord{Start: 4, End: 5}) {
		t.Fatalf("deletion coordinates = %+v, want {4 5}", got)
	}
	if r.DeletionSizes[0] != 1 || r.DeletionN != 1 {
		t.Fatalf("deletion size/n = %d/%d, want 1/1", r.DeletionSizes[0], r.DeletionN)
	}
}

func TestFindVariantsLongDeletion(t *testing.T) {
	// S5/S8: a single wide deletion collapses into one coordinate pair,
	// not a scattered sequence of 1bp deletions.
	alnRef := []byte("ATCGATCGATCG")
	alnRead := []byte("ATCG------CG")

	r, err := FindVariants(alnRef, alnRead, nil)
	if err != nil {
		t.Fatalf("FindVariants: %v", err)
	}
	if len(r.DeletionCoordinates) != 1 {
		t.Fatalf("got %d deletion runs, want 1", len(r.DeletionCoordinates))
	}
	if got := r.DeletionCoordinates[0]; got != (Coord{Start: 4, End: 10}) {
		t.Fatalf("deletion coordinates = %+v, want {4 10}", got)
	}
	if r.DeletionSizes[0] != 6 || r.DeletionN != 6 {
		t.Fatalf("deletion size/n = %d/%d, want 6/6", r.DeletionSizes[0], r.DeletionN)
	}
}

func TestFindVariantsSubstitutionExcludesN(t *testing.T) {
	// S6: read=ATCNATCG, ref=ATCGATCG. The N at the mismatch column must
	// not be recorded as a substitution.
	alnRef := []byte("ATCGATCG")
	alnRead := []byte("ATCNATCG")

	r, err := FindVariants(alnRef, alnRead, nil)
	if err != nil {
		t.Fatalf("FindVariants: %v", err)
	}
	if len(r.SubstitutionPositions) != 0 {
		t.Fatalf("got substitutions %v, want none (N is excluded)", r.SubstitutionPositions)
	}
}

func TestFindVariantsSubstitution(t *testing.T) {
	alnRef := []byte("ATCGATCG")
	alnRead := []byte("ATCTATCG")

	r, err := FindVariants(alnRef, alnRead, nil)
	if err != nil {
		t.Fatalf("FindVariants: %v", err)
	}
	if len(r.SubstitutionPositions) != 1 || r.SubstitutionPositions[0] != 3 {
		t.Fatalf("substitution positions = %v, want [3]", r.SubstitutionPositions)
	}
	if string(r.SubstitutionValues) != "T" {
		t.Fatalf("substitution values = %q, want %q", r.SubstitutionValues, "T")
	}
	if r.SubstitutionN != 1 {
		t.Fatalf("substitution_n = %d, want 1", r.SubstitutionN)
	}
}

func TestFindVariantsRefPositionsSentinel(t *testing.T) {
	// A leading insertion column (before any reference base has been
	// consumed) maps to the -1 sentinel, not -0.
	alnRef := []byte("-ATCG")
	alnRead := []byte("AATCG")

	r, err := FindVariants(alnRef, alnRead, nil)
	if err != nil {
		t.Fatalf("FindVariants: %v", err)
	}
	if r.RefPositions[0] != -1 {
		t.Fatalf("ref_positions[0] = %d, want -1", r.RefPositions[0])
	}
	want := []int{-1, 0, 1, 2, 3}
	for i, w := range want {
		if r.RefPositions[i] != w {
			t.Fatalf("ref_positions[%d] = %d, want %d", i, r.RefPositions[i], w)
		}
	}
	// A leading insertion's startInsertion collides with the "no
	// insertion open" sentinel, so it is silently dropped rather than
	// recorded. This mirrors the reference algorithm's own pseudocode.
	if len(r.InsertionPositions) != 0 {
		t.Fatalf("got %d insertions recorded for a leading insertion, want 0", len(r.InsertionPositions))
	}
}

func TestFindVariantsWindowIsSubsetOfAll(t *testing.T) {
	alnRef := []byte("ATCG-ATCGATCG")
	alnRead := []byte("ATCGAATCG-TCG")

	full, err := FindVariants(alnRef, alnRead, nil)
	if err != nil {
		t.Fatalf("FindVariants: %v", err)
	}

	// An include set covering every possible reference coordinate must
	// make the windowed lists equal to the "all" lists.
	everything := NewIndexSetFromRanges([]Coord{{Start: -100, End: 100}})
	windowed, err := FindVariants(alnRef, alnRead, everything)
	if err != nil {
		t.Fatalf("FindVariants: %v", err)
	}

	if len(windowed.InsertionPositionsWindow) != len(full.InsertionPositions) {
		t.Fatalf("full-window insertions = %d, want %d", len(windowed.InsertionPositionsWindow), len(full.InsertionPositions))
	}
	if len(windowed.DeletionPositionsWindow) != len(full.DeletionPositions) {
		t.Fatalf("full-window deletions = %d, want %d", len(windowed.DeletionPositionsWindow), len(full.DeletionPositions))
	}
	if len(windowed.SubstitutionPositionsWindow) != len(full.SubstitutionPositions) {
		t.Fatalf("full-window substitutions = %d, want %d", len(windowed.SubstitutionPositionsWindow), len(full.SubstitutionPositions))
	}

	// An empty include set must produce empty windowed lists while
	// leaving the "all" lists untouched.
	none, err := FindVariants(alnRef, alnRead, NewIndexSet())
	if err != nil {
		t.Fatalf("FindVariants: %v", err)
	}
	if len(none.InsertionPositionsWindow) != 0 || len(none.DeletionPositionsWindow) != 0 || len(none.SubstitutionPositionsWindow) != 0 {
		t.Fatalf("expected empty windowed lists with an empty include set, got %+v", none)
	}
	if len(none.InsertionPositions) != len(full.InsertionPositions) {
		t.Fatalf("an empty include set must not shrink the all list")
	}
}

func TestFindVariantsRejectsUnequalLength(t *testing.T) {
	_, err := FindVariants([]byte("ATCG"), []byte("ATC"), nil)
	if err == nil {
		t.Fatal("expected an error for unequal-length aligned strings")
	}
}

func TestFindVariantsRejectsGapVsGap(t *testing.T) {
	_, err := FindVariants([]byte("AT-G"), []byte("AT-G"), nil)
	if err == nil {
		t.Fatal("expected an error for a gap-vs-gap column")
	}
}
