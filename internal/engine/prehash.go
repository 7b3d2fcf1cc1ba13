package engine

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// PreHash computes H0, the 64-byte seed every lane's first two blocks are
// derived from.
//
// Version 0x13 includes the version byte in the hashed fields; version
// 0x10 (legacy) omits it entirely rather than hashing a fixed value in
// its place, matching the original pre-standardization draft's layout.
func PreHash(lanes, tagLen, memory, passes uint32, version Version, variant Variant, pwd, salt, secret, ad []byte) [64]byte {
	h, _ := blake2b.New512(nil)

	var buf [4]byte
	write32 := func(v uint32) {
		binary.LittleEndian.PutUint32(buf[:], v)
		h.Write(buf[:])
	}
	writeField := func(b []byte) {
		write32(uint32(len(b)))
		if len(b) > 0 {
			h.Write(b)
		}
	}

	write32(lanes)
	write32(tagLen)
	write32(memory)
	write32(passes)
	if version != Version10 {
		write32(uint32(version))
	}
	write32(uint32(variant))

	writeField(pwd)
	writeField(salt)
	writeField(secret)
	writeField(ad)

	var out [64]byte
	h.Sum(out[:0])
	return out
}
