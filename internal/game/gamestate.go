package game

import "fmt"

type GameState int

const (
	StateIdle     GameState = iota // nothing spawned yet
	StateRunning                   // snake moving, coins spawning
	StateGameOver                  // snake bit itself; waiting for Restart
)

func (s GameState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game-over"
	}
	return fmt.Sprintf("GameState(%d)", int(s))
}

// Session owns every piece of mutable game state. A single driver calls Tick
// once per frame and Restart between frames; nothing else writes to it.
type Session struct {
	Config Config
	Bounds Boundary

	State GameState
	Snake *Snake
	Coin  Pickup
	Score int
	Clock float64 // seconds of simulated time since the last Restart

	Events *EventBus

	rand    *Rand
	spawner *CoinSpawner
}

// NewSession validates cfg and returns an idle session. Call Restart to begin
// play.
func NewSession(cfg Config, seed uint64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := NewRand(seed)
	s := &Session{
		Config:  cfg,
		Bounds:  NewBoundary(cfg),
		State:   StateIdle,
		Events:  NewEventBus(),
		rand:    r,
		spawner: NewCoinSpawner(cfg, r),
	}
	return s, nil
}

// Restart throws away the current body, score and coin and enters Running
// with a lone head on a random cell.
func (s *Session) Restart() {
	start, _ := s.Bounds.Clamp(s.spawner.RandomStart(nil))
	height := s.Config.SegmentHeight / 2
	if s.Snake == nil {
		s.Snake = NewSnake(start, height)
	} else {
		s.Snake.Reset(start, height)
	}
	s.Score = 0
	s.Clock = 0
	s.Coin = Pickup{NextSpawn: s.Config.FirstSpawnDelay}
	s.State = StateRunning
	s.Events.Emit(Event{Type: EventSessionStarted, Pos: start})
}

func (s *Session) GameOver() bool { return s.State == StateGameOver }

// Tick advances the session by dt seconds of wall time. dt is clamped to
// Config.MaxStep so a stalled frame cannot fling the head across the board.
// Ticks outside Running are ignored.
func (s *Session) Tick(in Input, dt float64) {
	if s.State != StateRunning {
		return
	}
	cfg := s.Config
	dt = clampF(dt, 0, cfg.MaxStep)
	s.Clock += dt

	sn := s.Snake
	sn.TargetDirection = Steer(sn.TargetDirection, in, sn.Head(), cfg, s.Bounds, dt)
	sn.Advance(cfg, s.Bounds, dt)
	FollowPath(sn.Segments, sn.Path, cfg, s.Bounds)

	if SelfCollision(sn.Segments, cfg) {
		s.State = StateGameOver
		s.Events.Emit(Event{Type: EventGameOver, Pos: sn.Head(), Data: s.Score})
		return
	}

	if s.Coin.Active {
		s.Coin.Spin += CoinSpinRate * dt
		if PickupReached(sn.Head(), s.Coin, cfg) {
			s.collect()
		}
		return
	}
	if s.spawner.Update(&s.Coin, sn.Segments, s.Clock) {
		s.Events.Emit(Event{Type: EventCoinSpawned, Pos: s.Coin.Pos})
	}
}

func (s *Session) collect() {
	at := s.Coin.Pos
	s.spawner.Collect(&s.Coin, s.Clock)
	s.Score++
	s.Events.Emit(Event{Type: EventCoinCollected, Pos: at, Data: s.Score})

	s.Snake.Grow()
	s.Events.Emit(Event{Type: EventSegmentAdded, Pos: s.Snake.Tail().Pos, Data: len(s.Snake.Segments)})
}

// Snapshot is a copy of everything a renderer needs for one frame.
type Snapshot struct {
	State    GameState
	Segments []Segment
	Coin     Pickup
	Score    int
}

// Snapshot copies the render state into dst's buffers, reusing them when
// large enough, and returns it.
func (s *Session) Snapshot(dst *Snapshot) *Snapshot {
	if dst == nil {
		dst = &Snapshot{}
	}
	dst.State = s.State
	dst.Coin = s.Coin
	dst.Score = s.Score
	dst.Segments = dst.Segments[:0]
	if s.Snake != nil {
		dst.Segments = append(dst.Segments, s.Snake.Segments...)
	}
	return dst
}
