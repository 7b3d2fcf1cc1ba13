package engine

// indexAlpha computes the reference lane and in-lane index for the block
// about to be written at pos, given the 64-bit pseudo-random pair packed
// into j (low 32 bits select the in-lane offset via phi, high 32 bits
// select the reference lane).
//
// The reference-area size has a same-lane/different-lane asymmetry that is
// easy to get backwards: a same-lane reference always excludes the block
// about to be written (area = base + index - 1), but a different-lane
// reference only loses that slot when index == 0 (area = base, or base-1
// only at the very start of a segment) — different lanes otherwise already
// stop one segment short of the write frontier, so there is nothing to
// additionally exclude.
func indexAlpha(pos Position, j uint64, lanes, laneLength, segmentLength uint32) (refLane, refIndex uint32) {
	refLane = uint32(j>>32) % lanes
	if pos.Pass == 0 && pos.Slice == 0 {
		refLane = pos.Lane
	}
	sameLane := pos.Lane == refLane

	var area, start uint32
	if pos.Pass == 0 {
		area = pos.Slice * segmentLength
		start = 0
		if pos.Slice == 0 || sameLane {
			area += pos.Index
		}
	} else {
		area = 3 * segmentLength
		start = ((pos.Slice + 1) % syncPoints) * segmentLength
		if sameLane {
			area += pos.Index
		}
	}
	if pos.Index == 0 || sameLane {
		area--
	}

	refIndex = phi(j, area, start, laneLength)
	return refLane, refIndex
}

// phi applies the non-uniform x^2/2^32 mapping that favors recently
// written blocks, then resolves the result to an offset within the
// reference lane, in [0, laneLength).
func phi(j uint64, area, start, laneLength uint32) uint32 {
	x := j & 0xFFFFFFFF
	x = (x * x) >> 32
	x = (uint64(area) * x) >> 32
	rel := (uint64(start) + uint64(area) - (x + 1)) % uint64(laneLength)
	return uint32(rel)
}
