package engine

import "testing"

func TestGeometryRoundsUpSmallMemory(t *testing.T) {
	mPrime, laneLength, segmentLength := Geometry(4, 4) // m < 8p
	wantLaneLength := uint32(8)                          // 8p / p, rounded from raised m=32
	if laneLength != wantLaneLength {
		t.Errorf("laneLength = %d, want %d", laneLength, wantLaneLength)
	}
	if mPrime != laneLength*4 {
		t.Errorf("mPrime = %d, want %d", mPrime, laneLength*4)
	}
	if segmentLength*4 != laneLength {
		t.Errorf("segmentLength*4 = %d, want laneLength %d", segmentLength*4, laneLength)
	}
}

func TestGeometryRoundsDownToMultipleOf4P(t *testing.T) {
	// m=100, p=3: 8p=24 so m is already big enough; must round down to a
	// multiple of 4p=12.
	mPrime, _, _ := Geometry(100, 3)
	if mPrime%12 != 0 {
		t.Errorf("mPrime = %d is not a multiple of 4p=12", mPrime)
	}
	if mPrime > 100 {
		t.Errorf("mPrime = %d exceeds requested m=100", mPrime)
	}
}

func TestIndexAlphaStaysInBounds(t *testing.T) {
	lanes := uint32(4)
	_, laneLength, segmentLength := Geometry(1<<12, lanes)

	for pass := uint32(0); pass < 2; pass++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			for lane := uint32(0); lane < lanes; lane++ {
				for index := uint32(0); index < segmentLength; index++ {
					if pass == 0 && slice == 0 && index < 2 {
						continue
					}
					pos := Position{Pass: pass, Lane: lane, Slice: slice, Index: index}
					j := uint64(index)*0x9E3779B97F4A7C15 + uint64(lane)<<40

					refLane, refIndex := indexAlpha(pos, j, lanes, laneLength, segmentLength)
					if refLane >= lanes {
						t.Fatalf("refLane = %d out of bounds (lanes=%d)", refLane, lanes)
					}
					if refIndex >= laneLength {
						t.Fatalf("refIndex = %d out of bounds (laneLength=%d)", refIndex, laneLength)
					}
				}
			}
		}
	}
}

func TestIndexAlphaFirstSliceSameLane(t *testing.T) {
	// Per the spec, pass 0 / slice 0 always references the writer's own
	// lane, regardless of what the high bits of j select.
	lanes := uint32(4)
	_, laneLength, segmentLength := Geometry(1<<12, lanes)

	pos := Position{Pass: 0, Lane: 2, Slice: 0, Index: 3}
	j := uint64(5) | uint64(1)<<32 // high bits select lane 1 mod 4
	refLane, _ := indexAlpha(pos, j, lanes, laneLength, segmentLength)
	if refLane != pos.Lane {
		t.Errorf("refLane = %d, want writer's own lane %d at pass 0 slice 0", refLane, pos.Lane)
	}
}
