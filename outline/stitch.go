// seehuhn.de/go/c64ttf - convert Commodore 64 character sets to TrueType fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package outline

import (
	"cmp"
	"fmt"

	"golang.org/x/exp/slices"
)

// A RaggedBitmapError indicates a bitmap whose rows do not all have
// the same width.
type RaggedBitmapError struct {
	Row, Got, Want int
}

func (e *RaggedBitmapError) Error() string {
	return fmt.Sprintf("outline: row %d is %d pixels wide, expected %d",
		e.Row, e.Got, e.Want)
}

// An UnpairedBoundaryError indicates a boundary edge without a
// continuation, so that a contour cannot be closed.  This cannot
// happen for edge sets produced by [Bitmap.Edges].
type UnpairedBoundaryError struct {
	At Point
}

func (e *UnpairedBoundaryError) Error() string {
	return fmt.Sprintf("outline: no continuation edge at (%d,%d)",
		e.At.X, e.At.Y)
}

// An AmbiguousContinuationError indicates that the same directed
// edge occurs more than once in the input, which would make the
// boundary self-overlapping.
type AmbiguousContinuationError struct {
	Edge Edge
}

func (e *AmbiguousContinuationError) Error() string {
	return fmt.Sprintf("outline: duplicate edge (%d,%d)-(%d,%d)",
		e.Edge.Start.X, e.Edge.Start.Y, e.Edge.End.X, e.Edge.End.Y)
}

func comparePoints(a, b Point) int {
	if d := cmp.Compare(a.X, b.X); d != 0 {
		return d
	}
	return cmp.Compare(a.Y, b.Y)
}

func compareEdges(a, b Edge) int {
	if d := comparePoints(a.Start, b.Start); d != 0 {
		return d
	}
	return comparePoints(a.End, b.End)
}

// Stitch assembles directed boundary edges into closed contours.
// Every edge is used exactly once.  Each contour starts at the
// lexicographically smallest unused edge; where more than one edge
// leaves a point (two filled pixels touching corner to corner), the
// lexicographically smallest continuation is taken.  Consecutive
// collinear edges are merged, and the duplicate closing vertex is
// dropped.  The output is completely determined by the input edge
// set, regardless of input order.
func Stitch(edges []Edge) ([]Contour, error) {
	if len(edges) == 0 {
		return nil, nil
	}

	pool := make([]Edge, len(edges))
	copy(pool, edges)
	slices.SortFunc(pool, compareEdges)

	// index from start point to outgoing edges, in sorted order
	next := make(map[Point][]Edge)
	for i, e := range pool {
		if i > 0 && e == pool[i-1] {
			return nil, &AmbiguousContinuationError{Edge: e}
		}
		next[e.Start] = append(next[e.Start], e)
	}

	used := make(map[Edge]bool, len(pool))
	take := func(p Point) (Edge, bool) {
		cand := next[p]
		for len(cand) > 0 && used[cand[0]] {
			cand = cand[1:]
		}
		if len(cand) == 0 {
			next[p] = nil
			return Edge{}, false
		}
		e := cand[0]
		used[e] = true
		next[p] = cand[1:]
		return e, true
	}

	var contours []Contour
	for _, seed := range pool {
		if used[seed] {
			continue
		}
		used[seed] = true

		contour := Contour{seed.Start, seed.End}
		cur := seed
		for contour[len(contour)-1] != contour[0] {
			e, ok := take(cur.End)
			if !ok {
				return nil, &UnpairedBoundaryError{At: cur.End}
			}
			if e.End.X == cur.Start.X || e.End.Y == cur.Start.Y {
				// still moving along the same axis
				contour[len(contour)-1] = e.End
				cur.End = e.End
			} else {
				contour = append(contour, e.End)
				cur = e
			}
		}
		contours = append(contours, contour[:len(contour)-1])
	}
	return contours, nil
}
