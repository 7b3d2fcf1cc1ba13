package engine

// zeroBlock is reused wherever the spec calls for G(0, X).
var zeroBlock Block

// Compress computes the Argon2 compression function G(prev, ref) and writes
// the result into dst, either overwriting dst or XOR-accumulating into its
// existing contents.
//
// When sbox is non-nil (Argon2ds) the running accumulator described in the
// Argon2ds addendum is folded into the permutation's first and last words
// before the feed-forward XOR.
func Compress(dst, prev, ref *Block, accumulate bool, sbox *Sbox) {
	var r, q Block
	r = *ref
	r.XOR(prev) // r = R = ref ^ prev

	var x uint64
	if sbox != nil {
		x = sbox.perturb(r[0] ^ r[QWordsInBlock-1])
	}

	q = r // q holds R before the permutation, for the feed-forward XOR

	permute(&r)

	if sbox != nil {
		r[0] += x
		r[QWordsInBlock-1] += x
	}

	r.XOR(&q) // r = P(R) ^ R

	if accumulate {
		dst.XOR(&r)
	} else {
		*dst = r
	}
}

// permute applies the BLAKE2b round permutation P to a block in place:
// first over the eight contiguous 16-word groups ("rows" in the Argon2
// spec's terminology), then over the eight strided 16-word groups built
// from two adjacent words in each of the eight 16-word rows
// ("columns"). Both passes run exactly once; applying only the first
// (as a naive re-reading of "eight rounds" might suggest) leaves half the
// block's diffusion undone.
func permute(r *Block) {
	for i := 0; i < 8; i++ {
		gRound(r[i*16 : i*16+16])
	}

	var v [16]uint64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			v[2*j] = r[2*i+16*j]
			v[2*j+1] = r[2*i+1+16*j]
		}
		gRound(v[:])
		for j := 0; j < 8; j++ {
			r[2*i+16*j] = v[2*j]
			r[2*i+1+16*j] = v[2*j+1]
		}
	}
}
