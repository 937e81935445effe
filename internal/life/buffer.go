package life

import "github.com/bits-and-blooms/bitset"

// doubleBuffer holds the two bit buffers backing the universe.
// read is the published state visible to callers; write is a same-sized
// scratch buffer that mutations target. commit swaps the two, so a full
// generation scan never reallocates and never reads a half-written state.
type doubleBuffer struct {
	read  *bitset.BitSet
	write *bitset.BitSet
}

func newDoubleBuffer(n uint) *doubleBuffer {
	return &doubleBuffer{
		read:  bitset.New(n),
		write: bitset.New(n),
	}
}

// len returns the buffer capacity in bits.
func (b *doubleBuffer) len() uint {
	return b.read.Len()
}

// test reads a bit from the published buffer.
func (b *doubleBuffer) test(i uint) bool {
	return b.read.Test(i)
}

// set writes a bit into the scratch buffer.
func (b *doubleBuffer) set(i uint, v bool) {
	b.write.SetTo(i, v)
}

// insert sets a scratch-buffer bit alive.
func (b *doubleBuffer) insert(i uint) {
	b.write.Set(i)
}

// flip toggles a scratch-buffer bit.
func (b *doubleBuffer) flip(i uint) {
	b.write.Flip(i)
}

// clearAll zeroes the scratch buffer.
func (b *doubleBuffer) clearAll() {
	b.write.ClearAll()
}

// stage copies the published state into the scratch buffer so that a
// partial mutation (toggle, stamp) starts from the current generation.
func (b *doubleBuffer) stage() {
	b.read.CopyFull(b.write)
}

// commit publishes the scratch buffer and recycles the old published
// buffer as the next scratch target.
func (b *doubleBuffer) commit() {
	b.read, b.write = b.write, b.read
}

// grow extends both buffers to n bits. Existing bit values keep their
// linear indices; the added tail is zero.
func (b *doubleBuffer) grow(n uint) {
	grown := bitset.New(n)
	b.read.Copy(grown)
	b.read = grown
	b.write = bitset.New(n)
}

// replace discards both buffers in favor of fresh zeroed ones of n bits.
func (b *doubleBuffer) replace(n uint) {
	b.read = bitset.New(n)
	b.write = bitset.New(n)
}
