package game

import "math"

// FollowPath places every trailing segment on the recorded path, segment i
// lagging SegmentLength*i behind the head, and turns it to face along the
// path at that point.
func FollowPath(segs []Segment, path *PathTracker, cfg Config, bounds Boundary) {
	if len(segs) <= 1 {
		return
	}
	total := path.Total()
	lo := path.First().Dist
	offset := math.Max(0.1, cfg.SegmentLength*0.35)

	for i := 1; i < len(segs); i++ {
		at := math.Max(0, total-cfg.SegmentLength*float64(i))
		pos, _ := bounds.Clamp(path.PositionAt(at))
		segs[i].Pos = pos

		ahead := path.PositionAt(clampF(at+offset, lo, total))
		behind := path.PositionAt(clampF(at-offset, lo, total))
		tangent := ahead.Sub(behind)
		if tangent.LenSq() > tangentDegenerateSq {
			segs[i].Facing = tangent.Normalize().Heading()
		}
	}
}
