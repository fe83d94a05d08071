package session

import (
	"fmt"
	"slices"
	"sync"

	"junqi/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Registry keeps the matches in play, keyed by id.
type Registry struct {
	rules   game.Rules
	mutex   sync.RWMutex
	matches map[uuid.UUID]*Match
}

func NewRegistry(rules game.Rules) *Registry {
	return &Registry{
		rules:   rules,
		matches: make(map[uuid.UUID]*Match),
	}
}

// Create starts a match between two accepted layouts.
func (r *Registry) Create(p1, p2 game.PlayerLayout) (*Match, error) {
	m, err := NewMatch(r.rules, p1, p2)
	if err != nil {
		return nil, err
	}
	r.mutex.Lock()
	r.matches[m.ID] = m
	r.mutex.Unlock()

	log.Info().Str("match", m.ID.String()).Msg("match created")
	return m, nil
}

// Get looks a match up by its textual id.
func (r *Registry) Get(id string) (*Match, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, id)
	}
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	m, ok := r.matches[parsed]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, id)
	}
	return m, nil
}

// Remove forgets a match. Its rounds stay valid for whoever still holds them.
func (r *Registry) Remove(id uuid.UUID) bool {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	if _, ok := r.matches[id]; !ok {
		return false
	}
	delete(r.matches, id)
	log.Info().Str("match", id.String()).Msg("match removed")
	return true
}

// Prune removes every finished or broken match and returns how many went.
func (r *Registry) Prune() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	pruned := 0
	for id, m := range r.matches {
		if m.Err() != nil || m.Current().Status() != game.Ongoing {
			delete(r.matches, id)
			pruned++
		}
	}
	if pruned > 0 {
		log.Debug().Msgf("pruned %d matches", pruned)
	}
	return pruned
}

// IDs lists the ids of all matches, oldest first.
func (r *Registry) IDs() []uuid.UUID {
	r.mutex.RLock()
	defer r.mutex.RUnlock()
	matches := make([]*Match, 0, len(r.matches))
	for _, m := range r.matches {
		matches = append(matches, m)
	}
	slices.SortFunc(matches, func(a, b *Match) int {
		return a.Created.Compare(b.Created)
	})
	ids := make([]uuid.UUID, len(matches))
	for i, m := range matches {
		ids[i] = m.ID
	}
	return ids
}
