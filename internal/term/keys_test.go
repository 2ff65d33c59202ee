package term

import (
	"testing"

	"tiltsnake/internal/game"
)

func TestKeyStateHoldsForWindow(t *testing.T) {
	var k keyState
	k.advance(1)
	k.press(actRight)
	if got := k.Poll(); got.Steer != (game.Vec2{X: 1}) {
		t.Fatalf("Expected +X steering, got %+v", got)
	}
	k.advance(1 + KeyHold/2)
	if k.Poll().Steer.IsZero() {
		t.Error("Expected key still held inside the window")
	}
	k.advance(1 + KeyHold)
	if !k.Poll().Steer.IsZero() {
		t.Error("Expected key released after the window")
	}
}

func TestKeyStateTurnAndReset(t *testing.T) {
	var k keyState
	k.press(actCCW)
	if k.Poll().Turn != 1 {
		t.Errorf("Expected counter-clockwise turn, got %d", k.Poll().Turn)
	}
	k.press(actCW)
	if k.Poll().Turn != 0 {
		t.Error("Expected both turn keys to cancel")
	}
	k.reset()
	if k.Poll() != (game.Input{}) {
		t.Errorf("Expected no input after reset, got %+v", k.Poll())
	}
}
