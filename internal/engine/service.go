package engine

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seant15/gamify-timesheet/internal/grid"
)

// Snapshot is the full persisted state. Every write replaces the previous
// snapshot wholesale; two snapshots are never merged. Absent keys on load
// leave the corresponding in-memory default untouched, so Stats is a
// pointer and the collections distinguish nil from empty.
type Snapshot struct {
	Tasks       []Task             `json:"tasks"`
	Stats       *UserStats         `json:"stats,omitempty"`
	Pillars     []PillarDefinition `json:"pillars,omitempty"`
	Rewards     []Reward           `json:"rewards,omitempty"`
	ClaimedDays map[Day]bool       `json:"claimedDays,omitempty"`
}

// Store persists snapshots. Load reports ok=false when nothing has been
// saved yet.
type Store interface {
	Save(snap Snapshot) error
	Load() (snap Snapshot, ok bool, err error)
}

// Service is the single coordinator owning all application state: tasks,
// pillar catalog, rewards, user stats and the per-day claimed flags. All
// mutation goes through its command methods; each command persists a fresh
// snapshot and notifies observers. The mutex serializes the reward
// reversion timer and TUI goroutines with CLI commands.
type Service struct {
	mu      sync.Mutex
	tasks   []Task
	pillars []PillarDefinition
	rewards []Reward
	stats   UserStats
	claimed map[Day]bool

	layout       grid.Layout
	store        Store
	log          *zap.Logger
	observers    []func()
	revertDelay  time.Duration
	revertTimers map[string]*time.Timer
}

type Option func(*Service)

// WithLayout overrides the default grid layout used for drag placement.
func WithLayout(l grid.Layout) Option {
	return func(s *Service) { s.layout = l }
}

// WithRevertDelay overrides how long a purchased reward stays marked
// claimed before the display flag reverts.
func WithRevertDelay(d time.Duration) Option {
	return func(s *Service) { s.revertDelay = d }
}

// NewService builds a service seeded with the default catalog, then
// restores the stored snapshot if one exists. A nil store keeps all state
// in memory only; a failed restore is logged and startup continues from
// defaults — nothing in this subsystem is fatal.
func NewService(store Store, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		pillars:      DefaultPillars(),
		rewards:      DefaultRewards(),
		stats:        UserStats{Level: 1},
		claimed:      map[Day]bool{},
		layout:       grid.DefaultLayout(),
		store:        store,
		log:          log,
		revertDelay:  3 * time.Second,
		revertTimers: map[string]*time.Timer{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if store != nil {
		snap, ok, err := store.Load()
		if err != nil {
			log.Error("snapshot restore failed, starting from defaults", zap.Error(err))
		} else if ok {
			s.apply(snap)
		}
	}
	return s
}

func (s *Service) apply(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Tasks != nil {
		s.tasks = snap.Tasks
	}
	if snap.Stats != nil {
		s.stats = *snap.Stats
	}
	if snap.Pillars != nil {
		s.pillars = snap.Pillars
	}
	if snap.Rewards != nil {
		s.rewards = snap.Rewards
	}
	if snap.ClaimedDays != nil {
		s.claimed = snap.ClaimedDays
	}
}

func (s *Service) snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := s.stats
	snap := Snapshot{
		Tasks:       make([]Task, len(s.tasks)),
		Stats:       &stats,
		Pillars:     make([]PillarDefinition, len(s.pillars)),
		Rewards:     make([]Reward, len(s.rewards)),
		ClaimedDays: make(map[Day]bool, len(s.claimed)),
	}
	copy(snap.Tasks, s.tasks)
	copy(snap.Pillars, s.pillars)
	copy(snap.Rewards, s.rewards)
	for d, v := range s.claimed {
		snap.ClaimedDays[d] = v
	}
	return snap
}

// commit writes the current state through to the store and notifies
// observers. Called after every mutation, never while holding the mutex.
func (s *Service) commit() {
	snap := s.snapshot()
	if s.store != nil {
		if err := s.store.Save(snap); err != nil {
			s.log.Error("snapshot save failed", zap.Error(err))
		}
	}
	for _, fn := range s.observers {
		fn()
	}
}

// Subscribe registers fn to run after every committed mutation. Not safe
// to call concurrently with mutations; wire observers up before use.
func (s *Service) Subscribe(fn func()) {
	s.observers = append(s.observers, fn)
}

func (s *Service) Layout() grid.Layout {
	return s.layout
}

func (s *Service) Stats() UserStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// DayClaimed reports whether the day's earnings have been claimed. The
// flag is keyed by weekday with no week identity: it stays set across week
// boundaries until a task mutation on that day clears it.
func (s *Service) DayClaimed(day Day) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.claimed[day]
}

func newID() string {
	var b [6]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
