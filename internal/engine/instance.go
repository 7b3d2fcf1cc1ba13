package engine

import "encoding/binary"

// Observer is invoked after every block is written, when non-nil. It
// exists so a caller can inspect internal state (the historical
// print_internals / KAT-dump behavior) without the engine itself
// performing any I/O.
type Observer func(pos Position, block *Block)

// Instance holds one hash call's working memory and geometry. It is built
// by New, filled by Run, and consumed by Finalize; callers own its
// lifetime and must not reuse it across hash calls.
type Instance struct {
	Memory []Block

	Lanes         uint32
	Passes        uint32
	LaneLength    uint32
	SegmentLength uint32
	MPrime        uint32

	Variant Variant
	Version Version

	Sbox *Sbox

	Observer Observer
}

// New allocates and geometrically lays out an Instance for the given cost
// parameters. The caller supplies the already-rounded mPrime/laneLength/
// segmentLength from Geometry so that allocation size and addressing
// agree without recomputation.
func New(mPrime, laneLength, segmentLength, lanes, passes uint32, variant Variant, version Version, alloc func(n int) ([]Block, error)) (*Instance, error) {
	if alloc == nil {
		alloc = func(n int) ([]Block, error) { return make([]Block, n), nil }
	}
	mem, err := alloc(int(mPrime))
	if err != nil {
		return nil, err
	}
	return &Instance{
		Memory:        mem,
		Lanes:         lanes,
		Passes:        passes,
		LaneLength:    laneLength,
		SegmentLength: segmentLength,
		MPrime:        mPrime,
		Variant:       variant,
		Version:       version,
	}, nil
}

// Seed writes the first two blocks of every lane from H0, per spec 4.3.
func (inst *Instance) Seed(h0 [64]byte) {
	var seed [72]byte
	copy(seed[:64], h0[:])

	for lane := uint32(0); lane < inst.Lanes; lane++ {
		base := lane * inst.LaneLength

		binary.LittleEndian.PutUint32(seed[64:68], 0)
		binary.LittleEndian.PutUint32(seed[68:72], lane)
		inst.Memory[base+0].FromBytes(HPrime(seed[:], BlockSize))

		binary.LittleEndian.PutUint32(seed[64:68], 1)
		inst.Memory[base+1].FromBytes(HPrime(seed[:], BlockSize))
	}

	if inst.Variant == VariantDS {
		inst.Sbox = NewSbox(&inst.Memory[0])
	}
}

// accumulate reports whether G should XOR-accumulate into the existing
// block rather than overwrite it, for the given pass.
func (inst *Instance) accumulate(pass uint32) bool {
	if inst.Version == Version10 {
		return false
	}
	return pass != 0
}

// Finalize XOR-folds the last block of every lane and expands the result
// to tagLen bytes via H'.
func (inst *Instance) Finalize(tagLen uint32) []byte {
	var c Block
	c = inst.Memory[inst.LaneLength-1]
	for lane := uint32(1); lane < inst.Lanes; lane++ {
		c.XOR(&inst.Memory[lane*inst.LaneLength+inst.LaneLength-1])
	}
	return HPrime(c.ToBytes(), tagLen)
}

// Wipe clears every block of the working memory and the Sbox, for the
// clear-memory flag.
func (inst *Instance) Wipe() {
	for i := range inst.Memory {
		inst.Memory[i].Zero()
	}
	if inst.Sbox != nil {
		for i := range inst.Sbox.words {
			inst.Sbox.words[i] = 0
		}
	}
}
