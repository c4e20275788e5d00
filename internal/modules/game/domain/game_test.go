package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func waitingGame() Game {
	return Game{
		ID:        "game-1",
		Code:      "AB3Z",
		Status:    StatusWaitingForPlayer,
		Player1ID: "player-1",
	}
}

func Test_AttachPlayer_Starts_Game_With_Creator_On_Turn(t *testing.T) {
	// Arrange
	game := waitingGame()

	// Act
	err := game.AttachPlayer("player-2")

	// Assert
	require.NoError(t, err)
	require.Equal(t, StatusInProgress, game.Status)
	require.Equal(t, "player-2", game.Player2ID)
	require.Equal(t, "player-1", game.CurrentTurnID)
	require.Empty(t, game.WinnerID)
}

func Test_AttachPlayer_Fails_When_Game_Not_Waiting(t *testing.T) {
	// Arrange
	game := waitingGame()
	require.NoError(t, game.AttachPlayer("player-2"))

	// Act
	err := game.AttachPlayer("player-3")

	// Assert
	require.ErrorIs(t, err, ErrInvalidState)
	require.Equal(t, "player-2", game.Player2ID)
}

func Test_Resign_Awards_Win_To_Remaining_Player(t *testing.T) {
	for leaver, winner := range map[string]string{
		"player-1": "player-2",
		"player-2": "player-1",
	} {
		// Arrange
		game := waitingGame()
		require.NoError(t, game.AttachPlayer("player-2"))

		// Act
		err := game.Resign(leaver)

		// Assert
		require.NoError(t, err)
		require.Equal(t, StatusCompleted, game.Status)
		require.Equal(t, winner, game.WinnerID)
		require.Empty(t, game.CurrentTurnID)
	}
}

func Test_Resign_Rejects_Player_Not_In_Game(t *testing.T) {
	// Arrange
	game := waitingGame()
	require.NoError(t, game.AttachPlayer("player-2"))

	// Act
	err := game.Resign("stranger")

	// Assert
	require.ErrorIs(t, err, ErrInvalidState)
	require.Equal(t, StatusInProgress, game.Status)
	require.Empty(t, game.WinnerID)
}

func Test_Resign_Fails_When_Game_Not_In_Progress(t *testing.T) {
	// Arrange
	game := waitingGame()

	// Act
	err := game.Resign("player-1")

	// Assert
	require.ErrorIs(t, err, ErrInvalidState)
	require.Equal(t, StatusWaitingForPlayer, game.Status)
}
