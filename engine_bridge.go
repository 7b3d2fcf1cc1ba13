package argon2

import (
	"unsafe"

	"github.com/opd-ai/argon2go/internal/engine"
)

// blockAllocator adapts a byte-oriented Allocator to the []engine.Block
// shape engine.New expects. The Allocate contract promises "a single
// contiguous buffer of m' * 1024 bytes"; reinterpreting that buffer as
// []engine.Block in place (rather than decoding block-by-block) avoids a
// second m'*1024-byte copy of the working memory, the same alignment
// trick the teacher's dataset/memory code leans on with unsafe.Pointer.
type blockAllocator struct {
	alloc Allocator
	raw   []byte
}

func (b *blockAllocator) allocate(n int) ([]engine.Block, error) {
	raw, err := b.alloc.Allocate(n * engine.BlockSize)
	if err != nil {
		return nil, err
	}
	b.raw = raw
	if n == 0 {
		return nil, nil
	}
	return unsafe.Slice((*engine.Block)(unsafe.Pointer(&raw[0])), n), nil
}

func (b *blockAllocator) deallocate() {
	if b.raw != nil {
		b.alloc.Deallocate(b.raw)
		b.raw = nil
	}
}
