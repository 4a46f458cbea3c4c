package generation

import (
	"sync"
	"time"

	"bannerarchitect/internal/domain"
)

// Store holds one GenerationState per banner definition. Readers get value
// copies; only the Orchestrator in this package mutates it.
type Store struct {
	mu            sync.RWMutex
	order         []string
	slots         map[string]domain.GenerationState
	generatingAll int
	now           func() time.Time
}

// Snapshot is a point-in-time copy of every slot in catalog order.
type Snapshot struct {
	Slots         []domain.GenerationState
	GeneratingAll bool
}

// NewStore creates an idle slot for every definition.
func NewStore(defs []domain.BannerDefinition) *Store {
	s := &Store{
		order: make([]string, 0, len(defs)),
		slots: make(map[string]domain.GenerationState, len(defs)),
		now:   time.Now,
	}
	for _, def := range defs {
		if _, ok := s.slots[def.ID]; ok {
			continue
		}
		s.order = append(s.order, def.ID)
		s.slots[def.ID] = domain.GenerationState{
			BannerID: def.ID,
			Status:   domain.GenerationStatusIdle,
		}
	}
	return s
}

// Get returns the state of one slot.
func (s *Store) Get(id string) (domain.GenerationState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.slots[id]
	return state, ok
}

// Snapshot copies all slots.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := Snapshot{
		Slots:         make([]domain.GenerationState, 0, len(s.order)),
		GeneratingAll: s.generatingAll > 0,
	}
	for _, id := range s.order {
		out.Slots = append(out.Slots, s.slots[id])
	}
	return out
}

// IsGeneratingAll reports whether a generate-all fan-out is still running.
func (s *Store) IsGeneratingAll() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generatingAll > 0
}

func (s *Store) markPending(id string) bool {
	return s.update(id, func(state *domain.GenerationState) {
		state.Status = domain.GenerationStatusPending
		state.Error = ""
	})
}

func (s *Store) markSuccess(id, imageRef string) bool {
	return s.update(id, func(state *domain.GenerationState) {
		state.Status = domain.GenerationStatusSuccess
		state.ImageRef = imageRef
		state.Error = ""
	})
}

// markError leaves ImageRef untouched so a previous image stays available.
func (s *Store) markError(id, message string) bool {
	return s.update(id, func(state *domain.GenerationState) {
		state.Status = domain.GenerationStatusError
		state.Error = message
	})
}

func (s *Store) update(id string, fn func(*domain.GenerationState)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.slots[id]
	if !ok {
		return false
	}
	fn(&state)
	state.UpdatedAt = s.now()
	s.slots[id] = state
	return true
}

// beginGenerateAll raises the aggregate flag. When exclusive is set it fails
// instead of stacking onto a fan-out that is already running.
func (s *Store) beginGenerateAll(exclusive bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if exclusive && s.generatingAll > 0 {
		return false
	}
	s.generatingAll++
	return true
}

func (s *Store) endGenerateAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generatingAll > 0 {
		s.generatingAll--
	}
}
