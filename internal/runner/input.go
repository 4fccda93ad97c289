package runner

import "github.com/vovakirdan/hoodierun/internal/core"

// Action is what a key press asks the controller to do.
type Action int

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionStart // start a session when none is running
	ActionPause // toggle pause while running
	ActionTheme // switch between colorful and black-and-white
)

// ActionFor maps a key to its game action. Keys without an action map to
// ActionNone.
func ActionFor(k core.Key) Action {
	switch k {
	case core.KeyLeft:
		return ActionLeft
	case core.KeyRight:
		return ActionRight
	case core.KeySpace:
		return ActionStart
	case core.KeyEscape:
		return ActionPause
	case core.KeyTheme:
		return ActionTheme
	default:
		return ActionNone
	}
}

// SwipeTracker turns a touch start/end pair into a lane change.
type SwipeTracker struct {
	Threshold float64

	startX float64
	active bool
}

// Start records where a touch began.
func (t *SwipeTracker) Start(x float64) {
	t.startX = x
	t.active = true
}

// End finishes a touch and returns the lane delta. A finger dragged left
// moves the player right (+1) and a finger dragged right moves it left
// (-1). It returns 0 when the finger moved no further than the threshold
// or no touch was in progress.
func (t *SwipeTracker) End(x float64) int {
	if !t.active {
		return 0
	}
	t.active = false
	dx := t.startX - x
	switch {
	case dx > t.Threshold:
		return 1
	case dx < -t.Threshold:
		return -1
	default:
		return 0
	}
}

// KonamiCode is the sequence that unlocks the rainbow palette.
var KonamiCode = []core.Key{
	core.KeyUp, core.KeyUp, core.KeyDown, core.KeyDown,
	core.KeyLeft, core.KeyRight, core.KeyLeft, core.KeyRight,
	core.KeyB, core.KeyA,
}

// Sequence watches the stream of key presses for one fixed combination.
type Sequence struct {
	code []core.Key
	seen []core.Key
}

// NewSequence creates a detector for code.
func NewSequence(code []core.Key) *Sequence {
	return &Sequence{code: code, seen: make([]core.Key, 0, len(code))}
}

// Feed records a key press and reports whether it completed the sequence.
// Only the most recent len(code) keys are kept.
func (s *Sequence) Feed(k core.Key) bool {
	if len(s.code) == 0 {
		return false
	}
	if len(s.seen) == len(s.code) {
		copy(s.seen, s.seen[1:])
		s.seen = s.seen[:len(s.seen)-1]
	}
	s.seen = append(s.seen, k)
	if len(s.seen) != len(s.code) {
		return false
	}
	for i, want := range s.code {
		if s.seen[i] != want {
			return false
		}
	}
	s.seen = s.seen[:0]
	return true
}
