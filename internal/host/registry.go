package host

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/checkmate-go/internal/config"
	"github.com/lgbarn/checkmate-go/internal/engine"
	"github.com/lgbarn/checkmate-go/internal/errors"
)

// Registry holds the live games, keyed by id.
type Registry struct {
	cfg *config.Config

	mu    sync.RWMutex
	games map[string]*entry
	seq   uint64
}

// entry remembers creation order for List.
type entry struct {
	game *Game
	seq  uint64
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Registry{cfg: cfg, games: make(map[string]*entry)}
}

// Create starts a game between white and black from the configured start
// position.
func (r *Registry) Create(white, black Agent) (*Game, error) {
	return r.create(func(uint64) (Agent, Agent, error) { return white, black, nil })
}

// CreateFromConfig starts a game with the agents named in the host
// configuration. A fixed seed gives the n'th game created by r the seeds
// seed+2n and seed+2n+1, so a session of games is reproducible without
// repeating itself.
func (r *Registry) CreateFromConfig() (*Game, error) {
	return r.create(r.configSeats)
}

// configSeats builds the configured agents for the game numbered n.
func (r *Registry) configSeats(n uint64) (Agent, Agent, error) {
	whiteSeed, blackSeed := r.cfg.Host.Seed, r.cfg.Host.Seed
	if whiteSeed != 0 {
		whiteSeed += int64(2 * n)
		blackSeed = whiteSeed + 1
	}
	white, err := NewAgent(r.cfg.Host.White, whiteSeed)
	if err != nil {
		return nil, nil, err
	}
	black, err := NewAgent(r.cfg.Host.Black, blackSeed)
	if err != nil {
		return nil, nil, err
	}
	return white, black, nil
}

// create registers a new game. seats is called under the registry lock
// with the number of games created so far.
func (r *Registry) create(seats func(n uint64) (Agent, Agent, error)) (*Game, error) {
	start := engine.NewState()
	if fen := r.cfg.Host.StartFEN; fen != "" {
		s, err := engine.ParseFEN(fen)
		if err != nil {
			return nil, errors.Wrap(err, "start position")
		}
		start = s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if limit := r.cfg.Host.MaxGames; limit > 0 && len(r.games) >= limit {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "registry holds %d games", limit)
	}
	white, black, err := seats(r.seq)
	if err != nil {
		return nil, err
	}
	g := NewGame(r.cfg, start, white, black)
	r.seq++
	r.games[g.ID()] = &entry{game: g, seq: r.seq}
	r.cfg.Logf(1, "game %s created", g.ID())
	return g, nil
}

// Get returns the game with the given id.
func (r *Registry) Get(id string) (*Game, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.games[id]
	if !ok {
		return nil, &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	return e.game, nil
}

// Remove drops the game with the given id.
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; !ok {
		return &errors.GameError{Err: errors.ErrGameNotFound, GameID: id}
	}
	delete(r.games, id)
	r.cfg.Logf(1, "game %s removed", id)
	return nil
}

// List returns the live games, oldest first.
func (r *Registry) List() []*Game {
	r.mu.RLock()
	entries := make([]*entry, 0, len(r.games))
	for _, e := range r.games {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })
	games := make([]*Game, len(entries))
	for i, e := range entries {
		games[i] = e.game
	}
	return games
}

// Len returns the number of live games.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}
