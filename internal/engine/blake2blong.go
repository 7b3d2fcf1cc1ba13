package engine

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// HPrime is the variable-length hash H' built over BLAKE2b that Argon2 uses
// both to seed the first two blocks of every lane and to expand the final
// XOR-folded block into the requested tag length.
//
// For outLen <= 64 it is a single keyless BLAKE2b call over LE32(outLen) ||
// input, truncated to outLen. For longer outputs it chains BLAKE2b-512
// calls, keeping the first 32 bytes of every intermediate block and the
// full tail of the last one.
func HPrime(input []byte, outLen uint32) []byte {
	if outLen == 0 {
		return nil
	}

	prefixed := make([]byte, 4+len(input))
	binary.LittleEndian.PutUint32(prefixed[0:4], outLen)
	copy(prefixed[4:], input)

	if outLen <= 64 {
		h, err := blake2b.New(int(outLen), nil)
		if err != nil {
			panic("engine: blake2b.New failed for length " + itoa(int(outLen)) + ": " + err.Error())
		}
		h.Write(prefixed)
		return h.Sum(nil)
	}

	out := make([]byte, outLen)

	h, _ := blake2b.New512(nil)
	h.Write(prefixed)
	v := h.Sum(nil)

	copied := copy(out, v[:32])

	for copied < int(outLen) {
		remaining := int(outLen) - copied

		outSize := 64
		toCopy := 32
		if remaining <= 64 {
			outSize = remaining
			toCopy = remaining
		}

		h2, _ := blake2b.New(outSize, nil)
		h2.Write(v)
		v = h2.Sum(nil)

		copy(out[copied:], v[:toCopy])
		copied += toCopy
	}

	return out
}
