/*
bitboard.go implements the Bitboard type: a 64-bit set of board squares and
the bit-twiddling primitives move generation is built on.
*/

package chego

import "strings"

// Bitboard is a 64-bit set of board squares. Bit i*8+j is set iff square
// (row i, column j) is a member. Row 0 is White's back rank, column 0 is
// file a. Shifting left by 8 advances toward row 7.
type Bitboard uint64

// square packs a (row, col) pair into the bit index used throughout this
// package.
func square(i, j int) int { return i*8 + j }

// Set returns b with square (i,j) added.
func (b Bitboard) Set(i, j int) Bitboard { return b | 1<<square(i, j) }

// Clear returns b with square (i,j) removed.
func (b Bitboard) Clear(i, j int) Bitboard { return b &^ (1 << square(i, j)) }

// Toggle returns b with square (i,j) flipped.
func (b Bitboard) Toggle(i, j int) Bitboard { return b ^ (1 << square(i, j)) }

// IsSet reports whether square (i,j) belongs to b.
func (b Bitboard) IsSet(i, j int) bool { return b&(1<<square(i, j)) != 0 }

// PopCount returns the number of set bits, via Kernighan's bit-clearing trick
// rather than math/bits.
func (b Bitboard) PopCount() int {
	cnt := 0
	for ; b > 0; cnt++ {
		b &= b - 1
	}
	return cnt
}

// bitscanMagic is the precalculated de Bruijn-style constant used to index
// bitScanLookup.
const bitscanMagic uint64 = 0x07EDD5E59A4E28C2

// bitScanLookup maps the top 6 bits of (lsb * bitscanMagic) to the index of
// that LSB. See http://pradu.us/old/Nov27_2008/Buzz/research/magic/Bitboards.pdf
// section 3.2.
var bitScanLookup = [64]int{
	63, 0, 58, 1, 59, 47, 53, 2,
	60, 39, 48, 27, 54, 33, 42, 3,
	61, 51, 37, 40, 49, 18, 28, 20,
	55, 30, 34, 11, 43, 14, 22, 4,
	62, 57, 46, 52, 38, 26, 32, 41,
	50, 36, 17, 19, 29, 10, 13, 21,
	56, 45, 25, 31, 35, 16, 9, 12,
	44, 24, 15, 8, 23, 7, 6, 5,
}

// LowestSetIndex returns the index of the least-significant set bit.
// Undefined (returns 63) when b is empty — callers must guard with a
// popcount or emptiness check first.
func (b Bitboard) LowestSetIndex() int {
	lsb := uint64(b) & -uint64(b)
	return bitScanLookup[lsb*bitscanMagic>>58]
}

// popLSB clears the least-significant set bit of *b and returns its index.
func popLSB(b *uint64) int {
	lsb := *b & -*b
	idx := bitScanLookup[lsb*bitscanMagic>>58]
	*b &= *b - 1
	return idx
}

// SetIndices returns the ascending sequence of set-bit indices.
func (b Bitboard) SetIndices() []int {
	indices := make([]int, 0, b.PopCount())
	raw := uint64(b)
	for raw != 0 {
		indices = append(indices, popLSB(&raw))
	}
	return indices
}

// Subsets returns every subset of b's set bits, including the empty subset
// and b itself. The enumeration walks a binary counter over the extracted
// bit positions: bit i of the counter selects whether indices[i] is present.
func (b Bitboard) Subsets() []Bitboard {
	indices := b.SetIndices()
	n := len(indices)
	result := make([]Bitboard, 1<<n)
	for key := range 1 << n {
		var subset Bitboard
		for i, idx := range indices {
			if key&(1<<i) != 0 {
				subset |= 1 << idx
			}
		}
		result[key] = subset
	}
	return result
}

// And, Or, Xor, Not implement the bitwise logical operations.
func (b Bitboard) And(o Bitboard) Bitboard { return b & o }
func (b Bitboard) Or(o Bitboard) Bitboard  { return b | o }
func (b Bitboard) Xor(o Bitboard) Bitboard { return b ^ o }
func (b Bitboard) Not() Bitboard           { return ^b }

// Add, Sub, Mul, Div perform arithmetic on the underlying 64-bit value. Sub
// is used only for the black = taken - white identity, which assumes
// white is a subset of taken; it is not a general bitboard difference.
func (b Bitboard) Add(o Bitboard) Bitboard { return b + o }
func (b Bitboard) Sub(o Bitboard) Bitboard { return b - o }
func (b Bitboard) Mul(o Bitboard) Bitboard { return b * o }
func (b Bitboard) Div(o Bitboard) Bitboard { return b / o }

// Shl and Shr shift the board by n squares, wrapping around ranks the same
// way the raw integer does — callers that care about file wraparound must
// mask with notAFile/notHFile themselves, the same pattern genKingAttacks
// uses (genKnightAttacks does not mask).
func (b Bitboard) Shl(n uint) Bitboard { return b << n }
func (b Bitboard) Shr(n uint) Bitboard { return b >> n }

// String renders b as eight lines of 8-bit binary, one per rank, rank 7
// first, columns in ascending file order.
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 7; i >= 0; i-- {
		for j := range 8 {
			if b.IsSet(i, j) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
