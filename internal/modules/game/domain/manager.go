package domain

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// codeGenerationAttempts bounds the collision retry loop. The code space is
// 36^4, so exhausting the budget means the store is close to full or broken.
const codeGenerationAttempts = 10

// Manager owns the lobby lifecycle state machine. Every state-changing
// operation is a read-modify-write against the Store, serialized per game by
// a keyed mutex so concurrent calls on the same game cannot interleave.
type Manager struct {
	store  Store
	logger *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewManager(store Store, logger *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (m *Manager) lock(gameID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.locks[gameID]
	if !ok {
		l = &sync.Mutex{}
		m.locks[gameID] = l
	}

	return l
}

func (m *Manager) forgetLock(gameID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, gameID)
}

// CreateGame registers the first player and opens a new lobby with a fresh
// join code. Code collisions are recoverable: the store rejects a taken code
// and the save is retried with a new one, up to the attempt budget.
func (m *Manager) CreateGame(ctx context.Context, playerName string) (Game, error) {
	gameID := uuid.NewString()

	player, err := m.store.SavePlayer(ctx, Player{
		ID:     uuid.NewString(),
		Name:   playerName,
		GameID: gameID,
		Ready:  true,
	})
	if err != nil {
		return Game{}, storeErr("saving player", err)
	}

	game := Game{
		ID:        gameID,
		Status:    StatusWaitingForPlayer,
		Player1ID: player.ID,
		CreatedAt: time.Now().UTC(),
	}

	for attempt := 1; attempt <= codeGenerationAttempts; attempt++ {
		code, err := randomCode()
		if err != nil {
			return Game{}, storeErr("generating join code", err)
		}
		game.Code = code

		saved, err := m.store.Save(ctx, game)
		if errors.Is(err, ErrCodeConflict) {
			m.logger.Warn("join code collision",
				zap.String("code", code),
				zap.Int("attempt", attempt),
			)
			continue
		}
		if err != nil {
			return Game{}, storeErr("saving game", err)
		}

		m.logger.Info("game created",
			zap.String("game_id", saved.ID),
			zap.String("code", saved.Code),
		)
		return saved, nil
	}

	return Game{}, fmt.Errorf(
		"%w: no unique join code after %d attempts", ErrStorage, codeGenerationAttempts)
}

// JoinGame admits a second player into the lobby identified by its public
// code and starts the game.
func (m *Manager) JoinGame(ctx context.Context, code, playerName string) (Game, error) {
	// Resolve the code to an id first so the lock is taken per game.
	game, err := m.store.FindByCode(ctx, code)
	if err != nil {
		return Game{}, storeErr("finding game by code", err)
	}

	l := m.lock(game.ID)
	l.Lock()
	defer l.Unlock()

	// Re-read under the lock - the game may have filled up or been deleted
	// between the lookup and acquiring the lock.
	game, err = m.store.FindByCode(ctx, code)
	if err != nil {
		return Game{}, storeErr("finding game by code", err)
	}

	player := Player{
		ID:     uuid.NewString(),
		Name:   playerName,
		GameID: game.ID,
		Ready:  true,
	}

	if err := game.AttachPlayer(player.ID); err != nil {
		return Game{}, err
	}

	if _, err := m.store.SavePlayer(ctx, player); err != nil {
		return Game{}, storeErr("saving player", err)
	}

	saved, err := m.store.Save(ctx, game)
	if err != nil {
		return Game{}, storeErr("saving game", err)
	}

	m.logger.Info("player joined game",
		zap.String("game_id", saved.ID),
		zap.String("player_id", player.ID),
	)
	return saved, nil
}

// GetGame looks a game up by its public code. Read-only.
func (m *Manager) GetGame(ctx context.Context, code string) (Game, error) {
	game, err := m.store.FindByCode(ctx, code)
	if err != nil {
		return Game{}, storeErr("finding game by code", err)
	}

	return game, nil
}

// GetAvailableGames returns the lobbies still waiting for a second player,
// as a snapshot at call time.
func (m *Manager) GetAvailableGames(ctx context.Context) ([]Game, error) {
	games, err := m.store.ListAll(ctx)
	if err != nil {
		return nil, storeErr("listing games", err)
	}

	available := make([]Game, 0, len(games))
	for _, game := range games {
		if game.Status == StatusWaitingForPlayer {
			available = append(available, game)
		}
	}

	return available, nil
}

// LeaveGame handles a player departing. A lobby still waiting for its second
// player is destroyed outright and the pre-deletion snapshot returned; an
// in-progress game completes with the remaining occupant as winner; leaving
// a completed game is rejected.
func (m *Manager) LeaveGame(ctx context.Context, gameID, playerID string) (Game, error) {
	l := m.lock(gameID)
	l.Lock()
	defer l.Unlock()

	game, err := m.store.FindByID(ctx, gameID)
	if err != nil {
		return Game{}, storeErr("finding game", err)
	}

	switch game.Status {
	case StatusWaitingForPlayer:
		// The sole occupant left - nothing worth keeping.
		if err := m.store.Delete(ctx, game); err != nil {
			return Game{}, storeErr("deleting game", err)
		}
		m.forgetLock(gameID)

		m.logger.Info("game abandoned before start", zap.String("game_id", gameID))
		return game, nil

	case StatusInProgress:
		if err := game.Resign(playerID); err != nil {
			return Game{}, err
		}

		saved, err := m.store.Save(ctx, game)
		if err != nil {
			return Game{}, storeErr("saving game", err)
		}

		m.logger.Info("game forfeited",
			zap.String("game_id", gameID),
			zap.String("winner_id", saved.WinnerID),
		)
		return saved, nil

	default:
		return Game{}, fmt.Errorf("%w: game %s is already completed", ErrInvalidState, gameID)
	}
}

// GetAllGames returns every stored game. Diagnostics only.
func (m *Manager) GetAllGames(ctx context.Context) ([]Game, error) {
	games, err := m.store.ListAll(ctx)
	if err != nil {
		return nil, storeErr("listing games", err)
	}

	return games, nil
}

func randomCode() (string, error) {
	buf := make([]byte, CodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	code := make([]byte, CodeLength)
	for i, b := range buf {
		code[i] = CodeAlphabet[int(b)%len(CodeAlphabet)]
	}

	return string(code), nil
}

// storeErr classifies a store failure: expected outcomes pass through
// untouched, everything else is wrapped as a storage failure.
func storeErr(op string, err error) error {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrCodeConflict) {
		return err
	}

	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
