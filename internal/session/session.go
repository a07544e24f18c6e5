// Package session owns a progress store for one run of the app. It restores
// progress from persistence and applies the effects of every transition.
package session

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/divijg19/moveit/internal/core"
)

// Persisted field names.
const (
	FieldLevel               = "level"
	FieldCurrentExperience   = "currentExperience"
	FieldChallengesCompleted = "challengesCompleted"
)

// Notification text shown when a challenge starts.
const (
	NotificationTitle = "New challenge 🎉"
	notificationBody  = "Worth %dxp!"
)

// Persistence stores progress fields as strings.
type Persistence interface {
	Save(field, value string) error
	Load(field string) (value string, ok bool, err error)
}

// Notifier shows desktop notifications.
type Notifier interface {
	RequestPermission() bool
	Notify(title, body string) error
}

// AudioPlayer plays a short cue.
type AudioPlayer interface {
	PlayCue(path string) error
}

// Deps are the collaborators of a Session. Notifier and Audio are optional.
type Deps struct {
	Catalog     core.Catalog
	Persistence Persistence
	Notifier    Notifier
	Audio       AudioPlayer
	CuePath     string
	Logger      *zap.Logger
	Options     []core.Option
}

// Session drives one progress store on behalf of a user interface.
type Session struct {
	id          string
	store       *core.Store
	persistence Persistence
	notifier    Notifier
	audio       AudioPlayer
	cuePath     string
	permitted   bool
	logger      *zap.Logger
}

// Open restores progress and asks for notification permission once.
func Open(deps Deps) (*Session, error) {
	if deps.Persistence == nil {
		return nil, fmt.Errorf("open session: persistence is nil")
	}
	if deps.Catalog == nil || deps.Catalog.Len() == 0 {
		return nil, fmt.Errorf("open session: catalog is empty")
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	logger = logger.With(zap.String("session", id))

	seed := LoadSeed(deps.Persistence, logger)

	s := &Session{
		id:          id,
		store:       core.NewStore(seed, deps.Catalog, deps.Options...),
		persistence: deps.Persistence,
		notifier:    deps.Notifier,
		audio:       deps.Audio,
		cuePath:     deps.CuePath,
		logger:      logger,
	}

	if s.notifier != nil {
		s.permitted = s.notifier.RequestPermission()
	}

	logger.Info("session opened",
		zap.Int("level", seed.Level),
		zap.Int("current_experience", seed.CurrentExperience),
		zap.Int("challenges_completed", seed.ChallengesCompleted),
		zap.Bool("notifications", s.permitted),
	)
	return s, nil
}

// ID returns the session identifier attached to log entries.
func (s *Session) ID() string {
	return s.id
}

// Snapshot returns the current progress.
func (s *Session) Snapshot() core.Progress {
	return s.store.Snapshot()
}

// StartNewChallenge draws a new challenge, replacing any active one.
func (s *Session) StartNewChallenge() {
	s.apply(s.store.StartNewChallenge())
}

// CompleteChallenge credits the active challenge, if any.
func (s *Session) CompleteChallenge() {
	s.apply(s.store.CompleteChallenge())
}

// ResetChallenge abandons the active challenge.
func (s *Session) ResetChallenge() {
	s.apply(s.store.ResetChallenge())
	s.logger.Debug("challenge reset")
}

// LevelUp raises the level by one.
func (s *Session) LevelUp() {
	s.apply(s.store.LevelUp())
}

// CloseLevelUpModal acknowledges a pending level-up.
func (s *Session) CloseLevelUpModal() {
	s.apply(s.store.CloseLevelUpModal())
}

func (s *Session) apply(effects []core.Effect) {
	for _, effect := range effects {
		switch e := effect.(type) {
		case core.ChallengeStarted:
			s.challengeStarted(e.Challenge)
		case core.LeveledUp:
			s.logger.Info("level up", zap.Int("level", e.Level))
		case core.ProgressChanged:
			s.save(e.Seed)
		}
	}
}

func (s *Session) challengeStarted(challenge core.Challenge) {
	s.logger.Info("challenge started",
		zap.String("type", string(challenge.Kind)),
		zap.Int("amount", challenge.Amount),
	)

	if s.audio != nil {
		if err := s.audio.PlayCue(s.cuePath); err != nil {
			s.logger.Warn("play cue failed", zap.Error(err))
		}
	}

	if s.notifier != nil && s.permitted {
		body := fmt.Sprintf(notificationBody, challenge.Amount)
		if err := s.notifier.Notify(NotificationTitle, body); err != nil {
			s.logger.Warn("notification failed", zap.Error(err))
		}
	}
}

func (s *Session) save(seed core.Seed) {
	fields := []struct {
		name  string
		value int
	}{
		{FieldLevel, seed.Level},
		{FieldCurrentExperience, seed.CurrentExperience},
		{FieldChallengesCompleted, seed.ChallengesCompleted},
	}
	for _, f := range fields {
		if err := s.persistence.Save(f.name, strconv.Itoa(f.value)); err != nil {
			s.logger.Warn("save progress failed", zap.String("field", f.name), zap.Error(err))
		}
	}
}

// LoadSeed reads the persisted progress fields. Absent or unreadable fields
// take their default value.
func LoadSeed(p Persistence, logger *zap.Logger) core.Seed {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := core.DefaultSeed()
	seed.Level = loadInt(p, logger, FieldLevel, seed.Level)
	seed.CurrentExperience = loadInt(p, logger, FieldCurrentExperience, seed.CurrentExperience)
	seed.ChallengesCompleted = loadInt(p, logger, FieldChallengesCompleted, seed.ChallengesCompleted)
	return seed
}

func loadInt(p Persistence, logger *zap.Logger, field string, fallback int) int {
	value, ok, err := p.Load(field)
	if err != nil {
		logger.Warn("load progress failed", zap.String("field", field), zap.Error(err))
		return fallback
	}
	if !ok {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn("stored progress is not a number", zap.String("field", field), zap.String("value", value))
		return fallback
	}
	return n
}
