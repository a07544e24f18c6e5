package core

// Kind is the category a challenge belongs to.
type Kind string

const (
	KindBody Kind = "body"
	KindEye  Kind = "eye"
)

// Valid reports whether k is one of the known challenge kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindBody, KindEye:
		return true
	default:
		return false
	}
}

// Label returns the human-facing name of the kind.
func (k Kind) Label() string {
	switch k {
	case KindBody:
		return "Body"
	case KindEye:
		return "Eyes"
	default:
		return string(k)
	}
}

// Challenge is an immutable catalog entry with its experience reward.
type Challenge struct {
	Kind        Kind   `json:"type" yaml:"type"`
	Description string `json:"description" yaml:"description"`
	Amount      int    `json:"amount" yaml:"amount"`
}

// ActiveChallenge holds at most one challenge. The zero value is absent.
type ActiveChallenge struct {
	challenge Challenge
	present   bool
}

// NoChallenge returns an absent ActiveChallenge.
func NoChallenge() ActiveChallenge {
	return ActiveChallenge{}
}

// Some wraps c as the present active challenge.
func Some(c Challenge) ActiveChallenge {
	return ActiveChallenge{challenge: c, present: true}
}

// Get returns the challenge and whether one is present.
func (a ActiveChallenge) Get() (Challenge, bool) {
	return a.challenge, a.present
}

// Present reports whether a challenge is active.
func (a ActiveChallenge) Present() bool {
	return a.present
}

// Phase is the lifecycle position of a progress session.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseChallengeActive Phase = "challenge_active"
	PhaseLevelUpPending  Phase = "level_up_pending"
)

// Progress is a snapshot of the user's progress.
type Progress struct {
	Level               int
	CurrentExperience   int
	ChallengesCompleted int
	Active              ActiveChallenge
	LevelUpPending      bool
}

// ExperienceToNextLevel returns the threshold for the snapshot's level.
func (p Progress) ExperienceToNextLevel() int {
	return ExperienceToNextLevel(p.Level)
}

// Phase derives the lifecycle phase. A pending level-up takes precedence.
func (p Progress) Phase() Phase {
	switch {
	case p.LevelUpPending:
		return PhaseLevelUpPending
	case p.Active.Present():
		return PhaseChallengeActive
	default:
		return PhaseIdle
	}
}

// Seed is the persisted subset of Progress used to start a session.
type Seed struct {
	Level               int
	CurrentExperience   int
	ChallengesCompleted int
}

// DefaultSeed returns the progress of a brand new user.
func DefaultSeed() Seed {
	return Seed{Level: 1, CurrentExperience: 0, ChallengesCompleted: 0}
}
