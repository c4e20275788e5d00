package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/eskrenkovic/battleship-go/internal/modules/game/domain"

	"github.com/eskrenkovic/tql"
	"github.com/lib/pq"
)

const uniqueViolationCode = "23505"

// Postgres persists games and players through database/sql. Code uniqueness
// rides on the unique index over game.code - a violation surfaces as
// domain.ErrCodeConflict so the manager can retry with a fresh code.
type Postgres struct {
	db *sql.DB
}

var _ domain.Store = (*Postgres)(nil)

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db}
}

func (s *Postgres) Save(ctx context.Context, game domain.Game) (domain.Game, error) {
	const stmt = `
		INSERT INTO
			game (id, code, status, player_1_id, player_2_id, current_turn_id, winner_id, created_at)
		VALUES
			(:id, :code, :status, :player_1_id, :player_2_id, :current_turn_id, :winner_id, :created_at)
		ON CONFLICT (id) DO UPDATE
		SET
			status          = excluded.status,
			player_2_id     = excluded.player_2_id,
			current_turn_id = excluded.current_turn_id,
			winner_id       = excluded.winner_id;`

	if _, err := tql.Exec(ctx, s.db, stmt, game); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationCode {
			return domain.Game{}, domain.ErrCodeConflict
		}

		return domain.Game{}, err
	}

	return game, nil
}

func (s *Postgres) FindByID(ctx context.Context, id string) (domain.Game, error) {
	const query = `
		SELECT
			*
		FROM
			game
		WHERE
			id = $1;`

	games, err := tql.Query[domain.Game](ctx, s.db, query, id)
	if err != nil {
		return domain.Game{}, err
	}

	if len(games) == 0 {
		return domain.Game{}, domain.ErrNotFound
	}

	return games[0], nil
}

func (s *Postgres) FindByCode(ctx context.Context, code string) (domain.Game, error) {
	const query = `
		SELECT
			*
		FROM
			game
		WHERE
			code = $1;`

	games, err := tql.Query[domain.Game](ctx, s.db, query, code)
	if err != nil {
		return domain.Game{}, err
	}

	if len(games) == 0 {
		return domain.Game{}, domain.ErrNotFound
	}

	return games[0], nil
}

func (s *Postgres) ListAll(ctx context.Context) ([]domain.Game, error) {
	const query = `
		SELECT
			*
		FROM
			game;`

	return tql.Query[domain.Game](ctx, s.db, query)
}

func (s *Postgres) Delete(ctx context.Context, game domain.Game) error {
	const stmt = `
		DELETE FROM
			game
		WHERE
			id = $1;`

	_, err := tql.Exec(ctx, s.db, stmt, game.ID)
	return err
}

func (s *Postgres) SavePlayer(ctx context.Context, player domain.Player) (domain.Player, error) {
	const stmt = `
		INSERT INTO
			player (id, name, game_id, ready)
		VALUES
			(:id, :name, :game_id, :ready)
		ON CONFLICT (id) DO UPDATE
		SET
			name  = excluded.name,
			ready = excluded.ready;`

	if _, err := tql.Exec(ctx, s.db, stmt, player); err != nil {
		return domain.Player{}, err
	}

	return player, nil
}
