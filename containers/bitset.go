package containers

import "math/bits"

// BitSet32 is a fixed-width set over indices [0, 32) backed by a single
// machine word. Zero value is the empty set.
type BitSet32 struct {
	word uint32
}

// EmptyBitSet32 returns the empty BitSet32.
func EmptyBitSet32() BitSet32 { return BitSet32{} }

// SingletonBitSet32 returns a BitSet32 containing only idx.
func SingletonBitSet32(idx int) BitSet32 {
	return BitSet32{word: 1 << uint(idx)}
}

// Add returns a copy of b with idx inserted.
func (b BitSet32) Add(idx int) BitSet32 {
	b.word |= 1 << uint(idx)
	return b
}

// Remove returns a copy of b with idx removed.
func (b BitSet32) Remove(idx int) BitSet32 {
	b.word &^= 1 << uint(idx)
	return b
}

// Contains reports whether idx is a member of b.
func (b BitSet32) Contains(idx int) bool {
	return b.word&(1<<uint(idx)) != 0
}

// Intersects reports whether b and other share any member.
func (b BitSet32) Intersects(other BitSet32) bool {
	return b.word&other.word != 0
}

// Len returns the number of members.
func (b BitSet32) Len() int {
	return bits.OnesCount32(b.word)
}

// Members returns the set bits in ascending order.
//
// Complexity: O(Len()) via repeated TrailingZeros, not O(32).
func (b BitSet32) Members() []int {
	out := make([]int, 0, b.Len())
	w := b.word
	for w != 0 {
		i := bits.TrailingZeros32(w)
		out = append(out, i)
		w &= w - 1
	}
	return out
}

// Bits returns b's backing word, for callers that index a precomputed
// table by subset (mirrors smallbitset::Set32's conversion to u32).
func (b BitSet32) Bits() uint32 { return b.word }

// BitSet32FromBits builds a BitSet32 directly from a backing word.
func BitSet32FromBits(bits uint32) BitSet32 { return BitSet32{word: bits} }

// bitset256Words is the number of uint64 words backing a BitSet256
// (256 bits / 64 bits-per-word).
const bitset256Words = 4

// BitSet256 is a fixed-width set over indices [0, 256) backed by four
// machine words. Zero value is the empty set.
type BitSet256 struct {
	words [bitset256Words]uint64
}

// EmptyBitSet256 returns the empty BitSet256.
func EmptyBitSet256() BitSet256 { return BitSet256{} }

// SingletonBitSet256 returns a BitSet256 containing only idx.
func SingletonBitSet256(idx int) BitSet256 {
	var b BitSet256
	b.words[idx/64] = 1 << uint(idx%64)
	return b
}

// Add returns a copy of b with idx inserted.
func (b BitSet256) Add(idx int) BitSet256 {
	b.words[idx/64] |= 1 << uint(idx%64)
	return b
}

// Remove returns a copy of b with idx removed.
func (b BitSet256) Remove(idx int) BitSet256 {
	b.words[idx/64] &^= 1 << uint(idx%64)
	return b
}

// Contains reports whether idx is a member of b.
func (b BitSet256) Contains(idx int) bool {
	return b.words[idx/64]&(1<<uint(idx%64)) != 0
}

// Intersects reports whether b and other share any member.
func (b BitSet256) Intersects(other BitSet256) bool {
	for i := 0; i < bitset256Words; i++ {
		if b.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (b BitSet256) Len() int {
	n := 0
	for _, w := range b.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Members returns the set bits in ascending order.
func (b BitSet256) Members() []int {
	out := make([]int, 0, b.Len())
	for wi, w := range b.words {
		for w != 0 {
			i := bits.TrailingZeros64(w)
			out = append(out, wi*64+i)
			w &= w - 1
		}
	}
	return out
}
