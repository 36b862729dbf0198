package core

// Status is the derived state of a board.
type Status int

const (
	StatusPlaying Status = iota
	StatusLevelComplete
	StatusStalled
)

// String returns the status name used in logs and snapshots.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusLevelComplete:
		return "level_complete"
	case StatusStalled:
		return "stalled"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further fire can change the outcome.
func (s Status) Terminal() bool {
	return s == StatusLevelComplete || s == StatusStalled
}

// Evaluate derives the status of a set of cell values.
// All zeros wins over the same-sign check, since an all-zero board is
// trivially both non-negative and non-positive.
func Evaluate(cells []int) Status {
	allZero, allNonNeg, allNonPos := true, true, true
	for _, v := range cells {
		if v != 0 {
			allZero = false
		}
		if v < 0 {
			allNonNeg = false
		}
		if v > 0 {
			allNonPos = false
		}
	}

	switch {
	case allZero:
		return StatusLevelComplete
	case allNonNeg || allNonPos:
		return StatusStalled
	default:
		return StatusPlaying
	}
}
