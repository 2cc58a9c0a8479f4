package net

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/colossus/internal/game"
)

func startedDuel(t *testing.T) *game.Duel {
	t.Helper()
	rules := game.DefaultRules()
	_, deck0, err := game.DeckByNumber("../../decks.yaml", 1, rules)
	require.NoError(t, err)
	_, deck1, err := game.DeckByNumber("../../decks.yaml", 2, rules)
	require.NoError(t, err)
	d := game.NewDuel(game.DuelConfig{Deck0: deck0, Deck1: deck1, Seed: 11}, nil, nil)
	for d.State.Phase == game.PhaseCoinFlip {
		_, err := d.CallCoin(d.State.ActivePlayer, game.Heads)
		require.NoError(t, err)
	}
	return d
}

func TestBuildStateViewHidesOpponentHand(t *testing.T) {
	d := startedDuel(t)
	snap := d.Snapshot()

	for player := 0; player < 2; player++ {
		sv := BuildStateView(snap, player)
		assert.Len(t, sv.You.Hand, sv.You.HandCount)
		assert.Empty(t, sv.Opponent.Hand)
		assert.Equal(t, len(snap.Players[1-player].Hand), sv.Opponent.HandCount)
		assert.Equal(t, snap.Players[player].Gold, sv.You.Gold)
		assert.Equal(t, snap.ActivePlayer == player, sv.IsYourTurn)
	}
	sv := BuildStateView(snap, 0)
	assert.Equal(t, 1, sv.Round)
	assert.Equal(t, 100, sv.Bank)
	assert.LessOrEqual(t, len(sv.Log), recentLogLines)
}

// serveOne answers a single server message on the client end of a pipe.
func serveOne(t *testing.T, conn net.Conn, reply ClientMessage) <-chan ServerMessage {
	t.Helper()
	got := make(chan ServerMessage, 1)
	go func() {
		var msg ServerMessage
		if err := json.NewDecoder(conn).Decode(&msg); err != nil {
			close(got)
			return
		}
		got <- msg
		_ = json.NewEncoder(conn).Encode(reply)
	}()
	return got
}

func TestNetworkControllerPrompts(t *testing.T) {
	d := startedDuel(t)
	ctx := context.Background()

	t.Run("number", func(t *testing.T) {
		server, client := net.Pipe()
		defer server.Close()
		defer client.Close()
		nc := NewNetworkController(server, 0)
		got := serveOne(t, client, ClientMessage{Type: "number", Index: 4})

		n, err := nc.ChooseNumber(ctx, d.State, "How much?", 0, 9)
		require.NoError(t, err)
		assert.Equal(t, 4, n)
		msg := <-got
		assert.Equal(t, "choose_number", msg.Type)
		assert.Equal(t, 9, msg.Max)
		require.NotNil(t, msg.State)
	})

	t.Run("option", func(t *testing.T) {
		server, client := net.Pipe()
		defer server.Close()
		defer client.Close()
		nc := NewNetworkController(server, 1)
		got := serveOne(t, client, ClientMessage{Type: "option", Index: 1})

		i, err := nc.ChooseOption(ctx, d.State, "Which?", []string{"heal", "damage"})
		require.NoError(t, err)
		assert.Equal(t, 1, i)
		assert.Equal(t, []string{"heal", "damage"}, (<-got).Options)
	})

	t.Run("action out of range ends the turn", func(t *testing.T) {
		server, client := net.Pipe()
		defer server.Close()
		defer client.Close()
		nc := NewNetworkController(server, d.State.ActivePlayer)
		actions := d.LegalActions(d.State.ActivePlayer)
		got := serveOne(t, client, ClientMessage{Type: "action", Index: 99})

		a, err := nc.ChooseAction(ctx, d.State, actions)
		require.NoError(t, err)
		assert.Equal(t, game.ActionEndTurn, a.Type)
		assert.Len(t, (<-got).Actions, len(actions))
	})
}

func TestClientREPLAnswersPrompts(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()

	var out bytes.Buffer
	c := &Client{conn: client, playerName: "P1", in: strings.NewReader("2\n7\ny\n"), out: &out}
	done := make(chan error, 1)
	go func() { done <- c.RunREPL(context.Background()) }()

	enc := json.NewEncoder(server)
	dec := json.NewDecoder(server)

	require.NoError(t, enc.Encode(ServerMessage{Type: "notify", Event: &EventView{Round: 1, Turn: 1, Phase: "Main", Details: "P1 plays The Champ"}}))
	require.NoError(t, enc.Encode(ServerMessage{Type: "choose_option", Prompt: "Pick", Options: []string{"a", "b"}}))
	var reply ClientMessage
	require.NoError(t, dec.Decode(&reply))
	assert.Equal(t, ClientMessage{Type: "option", Index: 1}, reply)

	require.NoError(t, enc.Encode(ServerMessage{Type: "choose_number", Prompt: "Split", Min: 0, Max: 10}))
	require.NoError(t, dec.Decode(&reply))
	assert.Equal(t, ClientMessage{Type: "number", Index: 7}, reply)

	require.NoError(t, enc.Encode(ServerMessage{Type: "choose_yes_no", Prompt: "Accept?"}))
	reply = ClientMessage{}
	require.NoError(t, dec.Decode(&reply))
	assert.True(t, reply.Answer)

	require.NoError(t, enc.Encode(ServerMessage{Type: "game_over", Result: "P1 wins"}))
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("REPL did not stop on game_over")
	}
	assert.Contains(t, out.String(), "P1 plays The Champ")
	assert.Contains(t, out.String(), "P1 wins")
}
