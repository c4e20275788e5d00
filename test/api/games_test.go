package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/eskrenkovic/battleship-go/internal/modules/game"
	"github.com/eskrenkovic/battleship-go/internal/modules/game/domain"

	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, url string, body interface{}) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := fixture.client.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)

	return resp
}

func decodeGame(t *testing.T, resp *http.Response) game.Response {
	t.Helper()
	defer resp.Body.Close()

	var response game.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))

	return response
}

func createGame(t *testing.T, playerName string) game.Response {
	t.Helper()

	resp := postJSON(
		t,
		fmt.Sprintf("%s/api/games", fixture.baseURL),
		map[string]string{"playerName": playerName},
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	return decodeGame(t, resp)
}

func joinGame(t *testing.T, code, playerName string) *http.Response {
	t.Helper()

	return postJSON(
		t,
		fmt.Sprintf("%s/api/games/%s/join", fixture.baseURL, code),
		map[string]string{"playerName": playerName},
	)
}

func leaveGame(t *testing.T, gameID, playerID string) *http.Response {
	t.Helper()

	return postJSON(
		t,
		fmt.Sprintf("%s/api/games/%s/leave", fixture.baseURL, gameID),
		map[string]string{"playerId": playerID},
	)
}

func Test_CreateGame_Returns_Waiting_Game(t *testing.T) {
	// Act
	created := createGame(t, "Alice")

	// Assert
	require.NotEmpty(t, created.GameID)
	require.Len(t, created.GameCode, domain.CodeLength)
	require.Equal(t, string(domain.StatusWaitingForPlayer), created.Status)
	require.NotEmpty(t, created.Player1ID)
	require.Empty(t, created.Player2ID)
	require.Empty(t, created.Error)
}

func Test_CreateGame_Returns_400_When_PlayerName_Empty(t *testing.T) {
	// Act
	resp := postJSON(
		t,
		fmt.Sprintf("%s/api/games", fixture.baseURL),
		map[string]string{"playerName": ""},
	)
	defer resp.Body.Close()

	// Assert
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_JoinGame_Starts_The_Game(t *testing.T) {
	// Arrange
	created := createGame(t, "Alice")

	// Act
	resp := joinGame(t, created.GameCode, "Bob")

	// Assert
	require.Equal(t, http.StatusOK, resp.StatusCode)

	joined := decodeGame(t, resp)
	require.Equal(t, string(domain.StatusInProgress), joined.Status)
	require.Equal(t, created.Player1ID, joined.Player1ID)
	require.NotEmpty(t, joined.Player2ID)
}

func Test_JoinGame_Returns_404_For_Unknown_Code(t *testing.T) {
	// Act
	resp := joinGame(t, "ZZZZ", "Bob")
	defer resp.Body.Close()

	// Assert
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func Test_JoinGame_Returns_409_When_Game_Already_Started(t *testing.T) {
	// Arrange
	created := createGame(t, "Alice")

	first := joinGame(t, created.GameCode, "Bob")
	defer first.Body.Close()
	require.Equal(t, http.StatusOK, first.StatusCode)

	// Act
	second := joinGame(t, created.GameCode, "Carol")

	// Assert
	require.Equal(t, http.StatusConflict, second.StatusCode)

	response := decodeGame(t, second)
	require.NotEmpty(t, response.Error)
}

func Test_GetGame_Returns_Game_By_Code(t *testing.T) {
	// Arrange
	created := createGame(t, "Alice")

	// Act
	resp, err := fixture.client.Get(
		fmt.Sprintf("%s/api/games/%s", fixture.baseURL, created.GameCode),
	)

	// Assert
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	found := decodeGame(t, resp)
	require.Equal(t, created.GameID, found.GameID)
	require.Equal(t, created.GameCode, found.GameCode)
}

func Test_GetGame_Returns_404_For_Unknown_Code(t *testing.T) {
	// Act
	resp, err := fixture.client.Get(fmt.Sprintf("%s/api/games/XXXX", fixture.baseURL))

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func Test_GetAvailableGames_Lists_Only_Waiting_Games(t *testing.T) {
	// Arrange
	waiting := createGame(t, "Alice")

	started := createGame(t, "Bob")
	resp := joinGame(t, started.GameCode, "Carol")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Act
	listResp, err := fixture.client.Get(fmt.Sprintf("%s/api/games/available", fixture.baseURL))

	// Assert
	require.NoError(t, err)
	defer listResp.Body.Close()

	require.Equal(t, http.StatusOK, listResp.StatusCode)

	var available []game.Response
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&available))

	codes := map[string]struct{}{}
	for _, g := range available {
		require.Equal(t, string(domain.StatusWaitingForPlayer), g.Status)
		codes[g.GameCode] = struct{}{}
	}

	require.Contains(t, codes, waiting.GameCode)
	require.NotContains(t, codes, started.GameCode)
}

func Test_LeaveGame_Deletes_Waiting_Game(t *testing.T) {
	// Arrange
	created := createGame(t, "Alice")

	// Act
	resp := leaveGame(t, created.GameID, created.Player1ID)
	defer resp.Body.Close()

	// Assert
	require.Equal(t, http.StatusOK, resp.StatusCode)

	getResp, err := fixture.client.Get(
		fmt.Sprintf("%s/api/games/%s", fixture.baseURL, created.GameCode),
	)
	require.NoError(t, err)
	defer getResp.Body.Close()

	require.Equal(t, http.StatusNotFound, getResp.StatusCode)
}

func Test_LeaveGame_Completes_In_Progress_Game(t *testing.T) {
	// Arrange
	created := createGame(t, "Alice")

	joinResp := joinGame(t, created.GameCode, "Bob")
	require.Equal(t, http.StatusOK, joinResp.StatusCode)
	joined := decodeGame(t, joinResp)

	// Act - Bob abandons the match.
	resp := leaveGame(t, joined.GameID, joined.Player2ID)

	// Assert
	require.Equal(t, http.StatusOK, resp.StatusCode)

	left := decodeGame(t, resp)
	require.Equal(t, string(domain.StatusCompleted), left.Status)
}

func Test_GetAllGames_Returns_Listing(t *testing.T) {
	// Arrange
	created := createGame(t, "Alice")

	// Act
	resp, err := fixture.client.Get(fmt.Sprintf("%s/api/games", fixture.baseURL))

	// Assert
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var games []game.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&games))

	ids := map[string]struct{}{}
	for _, g := range games {
		ids[g.GameID] = struct{}{}
	}
	require.Contains(t, ids, created.GameID)
}
