// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package alias implements Walker's alias method for O(1) weighted-index
// sampling over a fixed set of nonnegative integer weights, after O(n)
// preprocessing. This is consensus-critical: every node must derive the
// same sample index from the same weights and the same random source, so
// the table is built with scaled-integer arithmetic only (spec §4.C,
// §9 "Alias-method determinism") — no floating point anywhere in this file.
package alias

import "errors"

// ErrEmptyWeights is returned when Table construction receives no weights.
var ErrEmptyWeights = errors.New("alias: empty weight set")

// ErrZeroTotalWeight is returned when every supplied weight is zero.
var ErrZeroTotalWeight = errors.New("alias: all weights are zero")

// Source is a uniform random source. Index must return a uniform integer in
// [0, n); Fraction must return a uniform numerator in [0, denom).
type Source interface {
	Index(n int) int
	Fraction(denom uint64) uint64
}

// Table is a precomputed alias table over a set of weights.
type Table struct {
	n     int
	prob  []uint64 // scaled to [0, scale)
	alias []int
	scale uint64
}

// New builds an alias table over weights in O(n). weights must be nonempty
// and sum to a nonzero total; the caller (validator selection) is
// responsible for preventing the undefined case per spec §4.C.
func New(weights []uint64) (*Table, error) {
	n := len(weights)
	if n == 0 {
		return nil, ErrEmptyWeights
	}

	var total uint64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return nil, ErrZeroTotalWeight
	}

	// Probabilities are fixed point with 32 fractional bits: a bucket that
	// always keeps its own index has probability scale.
	scale := uint64(1) << 32

	// scaled[i] = weights[i] * n * scale / total, so the scaled values
	// average scale and everything stays in integer arithmetic (spec §9).
	scaled := make([]uint64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		// The multiply is done in 128 bits before the divide, so the only
		// loss is the final floor.
		scaled[i] = mulDiv(w, uint64(n)*scale, total)
		if scaled[i] < scale {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	prob := make([]uint64, n)
	aliasIdx := make([]int, n)

	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		prob[s] = scaled[s]
		aliasIdx[s] = l

		// scaled[l] = scaled[l] + scaled[s] - scale, kept in integers.
		scaled[l] = scaled[l] + scaled[s] - scale
		if scaled[l] < scale {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	for _, l := range large {
		prob[l] = scale
	}
	for _, s := range small {
		prob[s] = scale
	}

	return &Table{n: n, prob: prob, alias: aliasIdx, scale: scale}, nil
}

// mulDiv computes floor(a*b/c) without overflowing for the ranges this
// package deals in (weights are Coin-scale, well under 2^63).
func mulDiv(a, b, c uint64) uint64 {
	hi, lo := bitsMul64(a, b)
	q, _ := bitsDiv64(hi, lo, c)
	return q
}

// Sample draws a weighted index in O(1) using the two draws the alias
// method requires: a uniform bucket index and a uniform fraction compared
// against that bucket's probability. The exact sequence of draws from src
// is part of the consensus-critical contract (spec §4.G) — callers must not
// reorder or skip a draw.
func (t *Table) Sample(src Source) int {
	i := src.Index(t.n)
	u := src.Fraction(t.scale)
	if u < t.prob[i] {
		return i
	}
	return t.alias[i]
}

// Len returns the number of weights the table was built over.
func (t *Table) Len() int {
	return t.n
}
