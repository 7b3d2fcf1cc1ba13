package engine

// fillSegment fills one (lane, slice) segment of a single pass, per spec
// 4.7. It is the unit of work the pipeline driver hands to a goroutine.
func (inst *Instance) fillSegment(pos Position) {
	dataIndependent := inst.usesDataIndependentAddressing(pos)

	var ag *addressGenerator
	if dataIndependent {
		ag = newAddressGenerator(pos, inst.MPrime, inst.Passes, inst.Variant)
	}

	startIndex := uint32(0)
	if pos.Pass == 0 && pos.Slice == 0 {
		startIndex = 2
	}
	if ag != nil {
		// Index i uses the i-th word of the segment's address stream, so
		// the words for the two seed blocks are consumed and discarded.
		for k := uint32(0); k < startIndex; k++ {
			ag.next()
		}
	}

	curr := pos.Lane*inst.LaneLength + pos.Slice*inst.SegmentLength + startIndex
	var prev uint32
	if curr%inst.LaneLength == 0 {
		prev = curr + inst.LaneLength - 1
	} else {
		prev = curr - 1
	}

	accumulate := inst.accumulate(pos.Pass)

	for i := startIndex; i < inst.SegmentLength; i++ {
		if curr%inst.LaneLength == 1 {
			prev = curr - 1
		}

		var j uint64
		if dataIndependent {
			j = ag.next()
		} else {
			j = inst.Memory[prev][0]
		}

		cursor := pos
		cursor.Index = i
		refLane, refIndex := indexAlpha(cursor, j, inst.Lanes, inst.LaneLength, inst.SegmentLength)
		refOffset := refLane*inst.LaneLength + refIndex

		Compress(&inst.Memory[curr], &inst.Memory[prev], &inst.Memory[refOffset], accumulate, inst.Sbox)

		if inst.Observer != nil {
			inst.Observer(cursor, &inst.Memory[curr])
		}

		curr++
		prev++
	}
}

// usesDataIndependentAddressing reports which addressing discipline
// applies at pos: Argon2i always, Argon2id only for the first half of
// pass 0, Argon2d/Argon2ds never.
func (inst *Instance) usesDataIndependentAddressing(pos Position) bool {
	switch inst.Variant {
	case VariantI:
		return true
	case VariantID:
		return pos.Pass == 0 && pos.Slice < syncPoints/2
	default:
		return false
	}
}
