// Copyright (c) 2025 The Albatross-Go developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package alias

import "math/bits"

func bitsMul64(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

func bitsDiv64(hi, lo, c uint64) (q, r uint64) {
	return bits.Div64(hi, lo, c)
}
