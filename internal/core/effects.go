package core

// Effect is a side effect requested by a progress transition. Effects are
// applied by the caller after the transition has completed.
type Effect interface {
	isEffect()
}

// ChallengeStarted is emitted when a new challenge becomes active.
type ChallengeStarted struct {
	Challenge Challenge
}

// LeveledUp is emitted once for every level gained.
type LeveledUp struct {
	Level int
}

// ProgressChanged carries the persisted fields after any of them changed.
type ProgressChanged struct {
	Seed Seed
}

func (ChallengeStarted) isEffect() {}
func (LeveledUp) isEffect()        {}
func (ProgressChanged) isEffect()  {}
