package store

import (
	"context"
	"sync"

	"github.com/eskrenkovic/battleship-go/internal/modules/game/domain"
)

// Memory is an in-process Store for tests and single-node setups. One mutex
// makes each call atomic; the codes index enforces join-code uniqueness the
// same way the unique index does in postgres.
type Memory struct {
	mu      sync.RWMutex
	games   map[string]domain.Game
	codes   map[string]string
	players map[string]domain.Player
}

var _ domain.Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		games:   make(map[string]domain.Game),
		codes:   make(map[string]string),
		players: make(map[string]domain.Player),
	}
}

func (s *Memory) Save(_ context.Context, game domain.Game) (domain.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if holder, taken := s.codes[game.Code]; taken && holder != game.ID {
		return domain.Game{}, domain.ErrCodeConflict
	}

	if existing, ok := s.games[game.ID]; ok && existing.Code != game.Code {
		delete(s.codes, existing.Code)
	}

	s.games[game.ID] = game
	s.codes[game.Code] = game.ID
	return game, nil
}

func (s *Memory) FindByID(_ context.Context, id string) (domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	game, ok := s.games[id]
	if !ok {
		return domain.Game{}, domain.ErrNotFound
	}

	return game, nil
}

func (s *Memory) FindByCode(_ context.Context, code string) (domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.codes[code]
	if !ok {
		return domain.Game{}, domain.ErrNotFound
	}

	return s.games[id], nil
}

func (s *Memory) ListAll(_ context.Context) ([]domain.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]domain.Game, 0, len(s.games))
	for _, game := range s.games {
		games = append(games, game)
	}

	return games, nil
}

// Delete removes the game and frees its code. Player records stay.
func (s *Memory) Delete(_ context.Context, game domain.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.games, game.ID)
	delete(s.codes, game.Code)
	return nil
}

func (s *Memory) SavePlayer(_ context.Context, player domain.Player) (domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players[player.ID] = player
	return player, nil
}
