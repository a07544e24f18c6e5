package core

import (
	"math/rand"
)

// Catalog is the read-only list challenges are drawn from.
type Catalog interface {
	Len() int
	At(i int) Challenge
}

// ExperienceToNextLevel returns ((level+1)*4)^2.
func ExperienceToNextLevel(level int) int {
	n := (level + 1) * 4
	return n * n
}

// Store holds the progress of one session and enforces the challenge
// lifecycle. It is not safe for concurrent use.
type Store struct {
	progress Progress
	catalog  Catalog
	pick     func(n int) int
}

// Option configures a Store.
type Option func(*Store)

// WithPicker replaces the uniform index picker. pick(n) must return a value
// in [0, n).
func WithPicker(pick func(n int) int) Option {
	return func(s *Store) {
		if pick != nil {
			s.pick = pick
		}
	}
}

// NormalizeSeed raises out of range values to their minimums and carries
// experience at or above the threshold into levels, the same way a
// completion does.
func NormalizeSeed(seed Seed) Seed {
	if seed.Level < 1 {
		seed.Level = 1
	}
	if seed.CurrentExperience < 0 {
		seed.CurrentExperience = 0
	}
	if seed.ChallengesCompleted < 0 {
		seed.ChallengesCompleted = 0
	}
	for seed.CurrentExperience >= ExperienceToNextLevel(seed.Level) {
		seed.CurrentExperience -= ExperienceToNextLevel(seed.Level)
		seed.Level++
	}
	return seed
}

// NewStore returns a Store seeded with restored progress, normalized by
// NormalizeSeed. A restored seed never leaves a level-up pending.
func NewStore(seed Seed, catalog Catalog, opts ...Option) *Store {
	seed = NormalizeSeed(seed)

	s := &Store{
		progress: Progress{
			Level:               seed.Level,
			CurrentExperience:   seed.CurrentExperience,
			ChallengesCompleted: seed.ChallengesCompleted,
		},
		catalog: catalog,
		pick:    rand.Intn,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current progress.
func (s *Store) Snapshot() Progress {
	return s.progress
}

// StartNewChallenge replaces the active challenge with a random catalog entry.
// It does nothing when the catalog is empty.
func (s *Store) StartNewChallenge() []Effect {
	if s.catalog == nil || s.catalog.Len() == 0 {
		return nil
	}

	challenge := s.catalog.At(s.pick(s.catalog.Len()))
	s.progress.Active = Some(challenge)

	return []Effect{ChallengeStarted{Challenge: challenge}}
}

// ResetChallenge abandons the active challenge, if any.
func (s *Store) ResetChallenge() []Effect {
	s.progress.Active = NoChallenge()
	return nil
}

// CompleteChallenge credits the active challenge's reward. Excess experience
// carries over into the next level, repeatedly, until it is under the
// threshold of the resulting level. Without an active challenge it does
// nothing.
func (s *Store) CompleteChallenge() []Effect {
	challenge, ok := s.progress.Active.Get()
	if !ok {
		return nil
	}

	var effects []Effect
	finalExperience := s.progress.CurrentExperience + challenge.Amount
	for finalExperience >= ExperienceToNextLevel(s.progress.Level) {
		finalExperience -= ExperienceToNextLevel(s.progress.Level)
		effects = append(effects, s.levelUp())
	}

	s.progress.CurrentExperience = finalExperience
	s.progress.Active = NoChallenge()
	s.progress.ChallengesCompleted++

	return append(effects, ProgressChanged{Seed: s.seed()})
}

// LevelUp raises the level by one and requests an acknowledgement.
func (s *Store) LevelUp() []Effect {
	leveled := s.levelUp()
	return []Effect{leveled, ProgressChanged{Seed: s.seed()}}
}

// CloseLevelUpModal acknowledges a pending level-up.
func (s *Store) CloseLevelUpModal() []Effect {
	s.progress.LevelUpPending = false
	return nil
}

func (s *Store) levelUp() LeveledUp {
	s.progress.Level++
	s.progress.LevelUpPending = true
	return LeveledUp{Level: s.progress.Level}
}

func (s *Store) seed() Seed {
	return Seed{
		Level:               s.progress.Level,
		CurrentExperience:   s.progress.CurrentExperience,
		ChallengesCompleted: s.progress.ChallengesCompleted,
	}
}
