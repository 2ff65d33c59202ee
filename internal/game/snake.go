package game

// Segment is one box of the snake. Index 0 of a body is the head.
type Segment struct {
	Pos    Vec2
	Height float64 // fixed vertical offset of the segment's centre
	Facing float64 // radians about the vertical axis, see Vec2.Heading
	Tint   int     // cosmetic variant, alternates as the body grows
}

// Snake is the player's body plus the motion state that drives its head.
// Only the head is ever moved directly; every other segment is resampled from
// Path each tick.
type Snake struct {
	Segments        []Segment
	Direction       Vec2
	TargetDirection Vec2
	Path            *PathTracker
}

func NewSnake(start Vec2, height float64) *Snake {
	s := &Snake{Path: NewPathTracker(start)}
	s.Reset(start, height)
	return s
}

// Reset shrinks the body back to a lone head at start, heading Forward.
func (s *Snake) Reset(start Vec2, height float64) {
	s.Segments = append(s.Segments[:0], Segment{
		Pos:    start,
		Height: height,
		Facing: Forward.Heading(),
	})
	s.Direction = Forward
	s.TargetDirection = Forward
	s.Path.Reset(start)
}

func (s *Snake) Head() Vec2 { return s.Segments[0].Pos }

func (s *Snake) Tail() Segment { return s.Segments[len(s.Segments)-1] }

// Grow appends a segment on top of the current tail. The follower pulls it
// onto the path on the next tick.
func (s *Snake) Grow() {
	tail := s.Tail()
	s.Segments = append(s.Segments, Segment{
		Pos:    tail.Pos,
		Height: tail.Height,
		Facing: tail.Facing,
		Tint:   len(s.Segments) % 2,
	})
}

// Advance moves the head for one tick of dt seconds: blend the direction
// toward the target, step, keep the result inside bounds and record it on the
// path. It reports whether the head moved.
func (s *Snake) Advance(cfg Config, bounds Boundary, dt float64) bool {
	head := s.Head()

	s.Direction = bounds.Adjust(s.Direction.Lerp(s.TargetDirection, cfg.Blend), head).Normalize()
	if s.Direction.IsZero() {
		return false
	}

	step := s.Direction.Scale(cfg.Speed * dt)
	if step.LenSq() == 0 {
		return false
	}

	next, clamped := bounds.Clamp(head.Add(step))
	if clamped {
		// Leave both vectors sliding along the wall so the next tick departs
		// tangentially instead of pushing into it again.
		s.Direction = bounds.Adjust(s.Direction, next).Normalize()
		s.TargetDirection = bounds.Adjust(s.TargetDirection, next).Normalize()
	}

	s.Segments[0].Pos = next
	s.Path.Append(next)
	if !s.Direction.IsZero() {
		s.Segments[0].Facing = s.Direction.Heading()
	}

	s.Path.Trim(cfg.SegmentLength*float64(len(s.Segments)) + cfg.pathReserve())
	return true
}
