package game

import "sort"

// PathSample is one recorded head position and the arc length travelled to
// reach it since the session started.
type PathSample struct {
	Pos  Vec2
	Dist float64
}

// PathTracker records the head's trajectory as a deque of samples: appended at
// the back every tick the head moves, trimmed from the front once no segment
// can reach that far back. Distances never decrease.
type PathTracker struct {
	buf  []PathSample
	head int // index of the oldest sample in buf
	size int
}

const minPathCap = 64

func NewPathTracker(start Vec2) *PathTracker {
	p := &PathTracker{buf: make([]PathSample, minPathCap)}
	p.Reset(start)
	return p
}

// Reset discards the history and starts over with a single sample at start.
func (p *PathTracker) Reset(start Vec2) {
	p.head = 0
	p.size = 1
	p.buf[0] = PathSample{Pos: start}
}

func (p *PathTracker) Len() int { return p.size }

// At returns the i-th oldest sample.
func (p *PathTracker) At(i int) PathSample {
	return p.buf[(p.head+i)%len(p.buf)]
}

func (p *PathTracker) First() PathSample { return p.At(0) }
func (p *PathTracker) Last() PathSample  { return p.At(p.size - 1) }

// Total is the arc length travelled so far.
func (p *PathTracker) Total() float64 { return p.Last().Dist }

// Append records the head arriving at pos and returns the new total distance.
func (p *PathTracker) Append(pos Vec2) float64 {
	last := p.Last()
	s := PathSample{Pos: pos, Dist: last.Dist + last.Pos.Dist(pos)}
	if p.size == len(p.buf) {
		p.grow()
	}
	p.buf[(p.head+p.size)%len(p.buf)] = s
	p.size++
	return s.Dist
}

func (p *PathTracker) grow() {
	next := make([]PathSample, len(p.buf)*2)
	for i := 0; i < p.size; i++ {
		next[i] = p.At(i)
	}
	p.buf = next
	p.head = 0
}

// Trim drops samples from the front while the second-oldest one is still more
// than keep behind the newest. The sample straddling the cut-off stays, so any
// lookup within keep of the head interpolates exactly as before the trim.
func (p *PathTracker) Trim(keep float64) int {
	cut := p.Total() - keep
	dropped := 0
	for p.size > 1 && p.At(1).Dist < cut {
		p.head = (p.head + 1) % len(p.buf)
		p.size--
		dropped++
	}
	return dropped
}

// PositionAt returns the point on the recorded path at arc length dist,
// interpolating between the bracketing samples. Lengths before the oldest
// sample clamp to it, lengths past the newest clamp to the head.
func (p *PathTracker) PositionAt(dist float64) Vec2 {
	first := p.First()
	if dist <= first.Dist {
		return first.Pos
	}
	last := p.Last()
	if dist >= last.Dist {
		return last.Pos
	}
	// First sample at or beyond dist; i >= 1 because dist > first.Dist.
	i := sort.Search(p.size, func(k int) bool { return p.At(k).Dist >= dist })
	a, b := p.At(i-1), p.At(i)
	span := b.Dist - a.Dist
	if span <= 0 {
		return b.Pos
	}
	return a.Pos.Lerp(b.Pos, (dist-a.Dist)/span)
}
