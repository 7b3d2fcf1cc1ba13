package engine

// addressGenerator streams the pseudo-random 64-bit values a
// data-independent segment consumes, one counter block of 128 words at a
// time. Each refill runs G twice over a counter block seeded with the
// segment's coordinates, per the spec's "two compressions over a zero
// block" construction.
type addressGenerator struct {
	input   Block
	address Block
	cursor  int
}

func newAddressGenerator(pos Position, mPrime, passes uint32, variant Variant) *addressGenerator {
	ag := &addressGenerator{cursor: QWordsInBlock}
	ag.input[0] = uint64(pos.Pass)
	ag.input[1] = uint64(pos.Lane)
	ag.input[2] = uint64(pos.Slice)
	ag.input[3] = uint64(mPrime)
	ag.input[4] = uint64(passes)
	ag.input[5] = uint64(variant)
	return ag
}

// next returns the next pseudo-random 64-bit value in the stream,
// refilling the 128-word address block whenever it runs dry.
func (ag *addressGenerator) next() uint64 {
	if ag.cursor == QWordsInBlock {
		ag.input[6]++
		Compress(&ag.address, &zeroBlock, &ag.input, false, nil)
		Compress(&ag.address, &zeroBlock, &ag.address, false, nil)
		ag.cursor = 0
	}
	v := ag.address[ag.cursor]
	ag.cursor++
	return v
}
