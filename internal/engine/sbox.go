package engine

// Sbox is the 64 KiB lookup table used only by Argon2ds to perturb the
// compression function with a data-dependent, cache-timing-hostile lookup.
// It is not part of any standardized Argon2 variant; it exists to match
// the historical Argon2ds addendum to the Password Hashing Competition
// submission.
type Sbox struct {
	words [sboxSize]uint64
}

const (
	sboxSize = 8192 // 8192 * 8 bytes = 64 KiB
	sboxHalf = sboxSize / 2
	sboxMask = sboxHalf - 1
)

// NewSbox derives the Sbox from the first block of lane 0, which must
// already hold its seeded value. Building it is itself a chain of plain
// (non-ds) compressions: G(0, start) -> out, then G(0, out) -> start,
// repeated once per 1024-byte chunk of the table.
func NewSbox(block0 *Block) *Sbox {
	s := &Sbox{}
	start := *block0
	var out Block

	chunks := sboxSize / QWordsInBlock
	for i := 0; i < chunks; i++ {
		Compress(&out, &zeroBlock, &start, false, nil)
		Compress(&start, &zeroBlock, &out, false, nil)
		copy(s.words[i*QWordsInBlock:(i+1)*QWordsInBlock], start[:])
	}
	return s
}

// perturb runs the 96-round mixing accumulator that Argon2ds folds into G
// between the initial XOR and the permutation. x1 indexes the first half
// of the table, x2 the second; the halves are masked independently so
// indices never leave the 8192-word table even though x itself is a full
// 64-bit running value.
func (s *Sbox) perturb(x uint64) uint64 {
	for i := 0; i < 96; i++ {
		x1 := x >> 32
		x2 := x & 0xFFFFFFFF
		y := s.words[x1&sboxMask]
		z := s.words[(x2&sboxMask)+sboxHalf]
		x = x1*x2 + y
		x ^= z
	}
	return x
}
