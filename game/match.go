package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/paddlearena/arena"
	"github.com/plus3/paddlearena/ecs"
	"go.uber.org/zap"
)

// Match is one running arena: a populated storage, the scheduler that steps
// it and the input oracle its systems read.
type Match struct {
	id        uuid.UUID
	cfg       arena.Config
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	logger    *zap.Logger
}

// NewMatch validates cfg, builds the world and registers the systems. The
// configuration is copied; later changes to cfg do not affect the match.
func NewMatch(cfg *arena.Config, input Input, logger *zap.Logger) (*Match, error) {
	if cfg == nil {
		defaults := arena.Default()
		cfg = &defaults
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new match: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Match{
		id:  uuid.New(),
		cfg: *cfg,
	}
	m.logger = logger.With(zap.Stringer("match", m.id))

	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	m.storage = ecs.NewStorage(registry)
	Setup(m.storage, &m.cfg)

	m.scheduler = ecs.NewScheduler(m.storage)
	m.scheduler.SetTickRate(m.cfg.TickRate)
	m.scheduler.Register(NewMovementSystem(&m.cfg, input))

	m.logger.Info("match created",
		zap.Int("entities", m.storage.EntityCount()),
		zap.Int("tick_rate", m.cfg.TickRate),
		zap.Bool("clamp_rackets", m.cfg.ClampRackets),
	)

	return m, nil
}

func (m *Match) ID() uuid.UUID {
	return m.id
}

func (m *Match) Config() *arena.Config {
	return &m.cfg
}

func (m *Match) Storage() *ecs.Storage {
	return m.storage
}

func (m *Match) Scheduler() *ecs.Scheduler {
	return m.scheduler
}

// Tick returns the number of completed ticks.
func (m *Match) Tick() uint64 {
	return m.scheduler.Tick()
}

// Step runs exactly one tick regardless of elapsed time.
func (m *Match) Step() {
	m.scheduler.Once(m.scheduler.FixedStep().DeltaTime())
}

// Advance feeds measured frame time into the fixed step and returns how many
// ticks ran.
func (m *Match) Advance(elapsed time.Duration) int {
	ticks := m.scheduler.Advance(elapsed)
	if ticks > 1 {
		m.logger.Debug("catching up", zap.Int("ticks", ticks), zap.Duration("elapsed", elapsed))
	}
	return ticks
}

// Alpha is the fraction of a step left in the accumulator, for render
// interpolation.
func (m *Match) Alpha() float64 {
	return m.scheduler.FixedStep().Alpha()
}

// Racket returns the transform of the given player's racket.
func (m *Match) Racket(playerNumber int) (*Transform, bool) {
	view := ecs.NewView[struct {
		*Racket
		*Transform
	}](m.storage)

	for item := range view.Values() {
		if item.Racket.PlayerNumber == playerNumber {
			return item.Transform, true
		}
	}
	return nil, false
}

func (m *Match) Digest() uint64 {
	return Digest(m.storage)
}

// Close logs the final state of the match.
func (m *Match) Close() {
	m.logger.Info("match finished",
		zap.Uint64("ticks", m.Tick()),
		zap.String("digest", fmt.Sprintf("%016x", m.Digest())),
	)
}
