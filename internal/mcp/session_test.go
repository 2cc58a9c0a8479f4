package mcp

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterkuimelis/colossus/internal/game"
)

// autoHuman plays the human seat with the deterministic auto controller.
type autoHuman struct {
	game.AutoController
	results chan string
}

func (h *autoHuman) SendGameOver(winner int, result string) error {
	h.results <- result
	return nil
}

func newTestSession(t *testing.T, agentPlayer int) (*GameSession, *autoHuman, chan string) {
	t.Helper()
	rules := game.DefaultRules()
	agentName, agentCards, err := game.DeckByNumber("../../decks.yaml", 1, rules)
	require.NoError(t, err)
	humanName, humanCards, err := game.DeckByNumber("../../decks.yaml", 2, rules)
	require.NoError(t, err)

	finished := make(chan string, 1)
	human := &autoHuman{results: make(chan string, 1)}
	cfg := SessionConfig{
		AgentPlayer: agentPlayer,
		Rules:       rules,
		Seed:        7,
		MaxTurns:    6,
		OnFinish: func(id string, d *game.Duel, deck0, deck1 string) {
			finished <- id
		},
	}
	sess := startSession(cfg, agentName, agentCards, humanName, humanCards, human, nil)
	activeSession = sess
	t.Cleanup(func() { activeSession = nil })
	return sess, human, finished
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) (*ToolResponse, *mcp.CallToolResult) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := handler(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, res)
	if res.IsError {
		return nil, res
	}
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	var resp ToolResponse
	require.NoError(t, json.Unmarshal([]byte(text.Text), &resp))
	return &resp, res
}

func TestSessionFirstDecisionIsTheCoinCall(t *testing.T) {
	sess, _, _ := newTestSession(t, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := sess.waitForPending(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp.Pending)
	assert.Equal(t, DecisionChooseAction, resp.Pending.Type)
	assert.Equal(t, "agent", resp.Pending.ForPlayer)
	assert.Equal(t, sess.ID, resp.MatchID)
	require.Len(t, resp.Pending.Actions, 2)
	assert.Equal(t, "Call heads", resp.Pending.Actions[0].Desc)
	assert.Equal(t, "Call tails", resp.Pending.Actions[1].Desc)
	require.NotNil(t, resp.State)
	assert.Equal(t, 100, resp.State.You.Health)
	assert.Equal(t, 100, resp.State.Bank)
}

func TestToolsRejectTheWrongDecision(t *testing.T) {
	sess, _, _ := newTestSession(t, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := sess.waitForPending(ctx)
	require.NoError(t, err)

	_, res := callTool(t, handleSelectCards, map[string]any{"indices": "0"})
	assert.True(t, res.IsError)
	_, res = callTool(t, handleChooseNumber, map[string]any{"value": 3})
	assert.True(t, res.IsError)
	_, res = callTool(t, handleTakeAction, map[string]any{"index": 9})
	assert.True(t, res.IsError)
}

func TestAgentPlaysAFullGameThroughTools(t *testing.T) {
	sess, human, finished := newTestSession(t, 0)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	resp, err := sess.waitForPending(ctx)
	require.NoError(t, err)

	for i := 0; i < 500 && !resp.GameOver; i++ {
		p := resp.Pending
		require.NotNil(t, p)
		var res *mcp.CallToolResult
		switch p.Type {
		case DecisionChooseAction:
			resp, res = callTool(t, handleTakeAction, map[string]any{"index": 0})
		case DecisionChooseCards:
			var picks []string
			for j := 0; j < p.Min; j++ {
				picks = append(picks, strconv.Itoa(j))
			}
			resp, res = callTool(t, handleSelectCards, map[string]any{"indices": strings.Join(picks, " ")})
		case DecisionChooseYesNo:
			resp, res = callTool(t, handleAnswerYesNo, map[string]any{"answer": true})
		case DecisionChooseOption:
			resp, res = callTool(t, handleChooseOption, map[string]any{"index": 0})
		case DecisionChooseNumber:
			resp, res = callTool(t, handleChooseNumber, map[string]any{"value": p.Min})
		default:
			t.Fatalf("unexpected decision %q", p.Type)
		}
		require.False(t, res.IsError, "tool error: %+v", res.Content)
	}

	require.True(t, resp.GameOver, "game should end within the turn limit")
	assert.NotEmpty(t, resp.Result)
	assert.Nil(t, activeSession, "a finished game frees the session")

	select {
	case id := <-finished:
		assert.Equal(t, sess.ID, id)
	case <-ctx.Done():
		t.Fatal("OnFinish was not called")
	}
	select {
	case result := <-human.results:
		assert.Equal(t, resp.Result, result)
	case <-ctx.Done():
		t.Fatal("the human seat was not told the game ended")
	}
}

func TestGetGameStateWithoutSession(t *testing.T) {
	activeSession = nil
	_, res := callTool(t, handleGetGameState, nil)
	assert.True(t, res.IsError)
}
