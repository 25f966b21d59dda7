package game

import "math/rand/v2"

// Key is a logical control identifier, independent of any input device.
type Key int

const (
	KeyNone Key = iota
	KeyW
	KeyS
	KeyArrowUp
	KeyArrowDown
)

func (k Key) String() string {
	switch k {
	case KeyW:
		return "W"
	case KeyS:
		return "S"
	case KeyArrowUp:
		return "ArrowUp"
	case KeyArrowDown:
		return "ArrowDown"
	default:
		return "None"
	}
}

// Input reports whether a control is held right now. It is level-triggered:
// no press or release edges are buffered.
type Input interface {
	Pressed(key Key) bool
}

// InputFunc adapts a function to Input.
type InputFunc func(key Key) bool

func (f InputFunc) Pressed(key Key) bool {
	return f(key)
}

// HeldKeys is an Input backed by an explicit set of held keys.
type HeldKeys map[Key]bool

func (h HeldKeys) Pressed(key Key) bool {
	return h[key]
}

func (h HeldKeys) Press(keys ...Key) {
	for _, k := range keys {
		h[k] = true
	}
}

func (h HeldKeys) Release(keys ...Key) {
	for _, k := range keys {
		delete(h, k)
	}
}

// RandomInput holds a pseudo-random subset of keys, re-rolled by Shuffle.
// The same seed always produces the same sequence.
type RandomInput struct {
	rng  *rand.Rand
	held HeldKeys

	// Probability that each key is held after a Shuffle.
	HoldChance float64
}

func NewRandomInput(seed uint64) *RandomInput {
	return &RandomInput{
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		held:       HeldKeys{},
		HoldChance: 0.35,
	}
}

// Shuffle re-rolls which keys are held.
func (r *RandomInput) Shuffle() {
	for _, key := range []Key{KeyW, KeyS, KeyArrowUp, KeyArrowDown} {
		if r.rng.Float64() < r.HoldChance {
			r.held.Press(key)
		} else {
			r.held.Release(key)
		}
	}
}

func (r *RandomInput) Pressed(key Key) bool {
	return r.held.Pressed(key)
}
