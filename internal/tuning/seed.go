package tuning

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// SeedEnv fixes the session seed when the -seed flag is not given.
const SeedEnv = "SNAKE_SEED"

var ErrSeed = errors.New("malformed seed")

// Seed picks the session seed: flagSeed when non-zero, then SNAKE_SEED, then
// the clock. A malformed SNAKE_SEED is reported alongside the clock seed.
func Seed(flagSeed uint64) (uint64, error) {
	if flagSeed != 0 {
		return flagSeed, nil
	}
	clock := uint64(time.Now().UnixNano())
	s := os.Getenv(SeedEnv)
	if s == "" {
		return clock, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return clock, fmt.Errorf("%w: %s=%q", ErrSeed, SeedEnv, s)
	}
	return v, nil
}
