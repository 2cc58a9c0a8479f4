package mcp

import (
	"context"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// baseConfig holds the process-wide session settings, set by main.
var baseConfig SessionConfig

// Configure sets the deck file, port, rules and finish hook used by start_game.
func Configure(cfg SessionConfig) {
	baseConfig = cfg
}

// RegisterTools adds all game tools to the MCP server.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(takeActionTool(), handleTakeAction)
	s.AddTool(selectCardsTool(), handleSelectCards)
	s.AddTool(answerYesNoTool(), handleAnswerYesNo)
	s.AddTool(chooseOptionTool(), handleChooseOption)
	s.AddTool(chooseNumberTool(), handleChooseNumber)
	s.AddTool(getGameStateTool(), handleGetGameState)
}

// --- Tool definitions ---

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new Colossus game. Returns the initial game state and first pending decision. "+
			"The human player connects via `colossus-cli join --addr localhost:<port> --deck N` in a separate terminal. "+
			"This call blocks until the human connects. The coin flip is the first action: call heads or tails."),
		mcp.WithNumber("agent_deck", mcp.Required(), mcp.Description("Deck number for the agent (1-indexed from decks.yaml)")),
		mcp.WithNumber("agent_player", mcp.Required(), mcp.Description("Which seat the agent takes: 0 = P1, 1 = P2")),
	)
}

func takeActionTool() mcp.Tool {
	return mcp.NewTool("take_action",
		mcp.WithDescription("Choose an action from the pending action list (call the coin, play a card into a slot, or end the turn). "+
			"Use this when the pending decision type is 'choose_action'."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index of the action to take from the actions list")),
	)
}

func selectCardsTool() mcp.Tool {
	return mcp.NewTool("select_cards",
		mcp.WithDescription("Select cards from the pending candidates list. Use this when the pending decision type is 'choose_cards'."),
		mcp.WithString("indices", mcp.Required(), mcp.Description("Space-separated 0-based indices of cards to select (e.g. '0 2 3'), or empty string for no selection")),
	)
}

func answerYesNoTool() mcp.Tool {
	return mcp.NewTool("answer_yes_no",
		mcp.WithDescription("Answer a yes/no question. Use this when the pending decision type is 'choose_yes_no'."),
		mcp.WithBoolean("answer", mcp.Required(), mcp.Description("true for yes, false for no")),
	)
}

func chooseOptionTool() mcp.Tool {
	return mcp.NewTool("choose_option",
		mcp.WithDescription("Pick one of several labelled options. Use this when the pending decision type is 'choose_option'."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index into the options list")),
	)
}

func chooseNumberTool() mcp.Tool {
	return mcp.NewTool("choose_number",
		mcp.WithDescription("Pick a number between min and max inclusive. Use this when the pending decision type is 'choose_number'."),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("The chosen number")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current game state, accumulated events, and pending decision without submitting a response. Read-only."),
	)
}

// --- Tool handlers ---

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A game is already running. Only one game at a time is supported."), nil
	}

	cfg := baseConfig
	cfg.AgentDeck = request.GetInt("agent_deck", 0)
	cfg.AgentPlayer = request.GetInt("agent_player", 0)

	if cfg.AgentDeck < 1 {
		return mcp.NewToolResultError("agent_deck must be >= 1"), nil
	}
	if cfg.AgentPlayer != 0 && cfg.AgentPlayer != 1 {
		return mcp.NewToolResultError("agent_player must be 0 or 1"), nil
	}

	sess, err := NewGameSession(cfg)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}

	activeSession = sess

	resp, err := sess.waitForPending(ctx)
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for first decision: %v", err), nil
	}

	resp.Port = cfg.Port

	return mcp.NewToolResultText(respondJSON(resp)), nil
}

// pendingFor returns the active session if the agent owes a decision of
// type want, or a tool error explaining why not.
func pendingFor(want DecisionType) (*GameSession, *mcp.CallToolResult) {
	if activeSession == nil {
		return nil, mcp.NewToolResultError("No game is running. Use start_game first.")
	}
	sess := activeSession
	pending := sess.currentPending
	if pending == nil {
		return nil, mcp.NewToolResultError("No pending decision.")
	}
	if pending.Type == DecisionGameOver {
		return nil, mcp.NewToolResultError("The game is over.")
	}
	if pending.Player != sess.agentPlayer {
		return nil, mcp.NewToolResultError("Waiting for human player to respond via their terminal.")
	}
	if pending.Type != want {
		return nil, mcp.NewToolResultErrorf("Wrong tool: pending decision is '%s', not '%s'. Use the correct tool.", pending.Type, want)
	}
	return sess, nil
}

// answer hands resp to the engine and returns the next decision.
func answer(ctx context.Context, sess *GameSession, resp any) (*mcp.CallToolResult, error) {
	sess.agentCtrl.responseCh <- resp

	next, err := sess.waitForPending(ctx)
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for next decision: %v", err), nil
	}
	if next.GameOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(next)), nil
}

func handleTakeAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := pendingFor(DecisionChooseAction)
	if errResult != nil {
		return errResult, nil
	}
	pending := sess.currentPending

	index := request.GetInt("index", -1)
	if index < 0 || index >= len(pending.Actions) {
		return mcp.NewToolResultErrorf("Invalid index %d. Must be 0-%d.", index, len(pending.Actions)-1), nil
	}
	return answer(ctx, sess, ActionResponse{Index: index})
}

func handleSelectCards(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := pendingFor(DecisionChooseCards)
	if errResult != nil {
		return errResult, nil
	}
	pending := sess.currentPending

	var indices []int
	for _, p := range strings.Fields(request.GetString("indices", "")) {
		idx, err := strconv.Atoi(p)
		if err != nil {
			return mcp.NewToolResultErrorf("Invalid index '%s': must be an integer.", p), nil
		}
		if idx < 0 || idx >= len(pending.Candidates) {
			return mcp.NewToolResultErrorf("Index %d out of range. Must be 0-%d.", idx, len(pending.Candidates)-1), nil
		}
		indices = append(indices, idx)
	}

	if len(indices) < pending.Min {
		return mcp.NewToolResultErrorf("Must select at least %d card(s), got %d.", pending.Min, len(indices)), nil
	}
	if len(indices) > pending.Max {
		return mcp.NewToolResultErrorf("Must select at most %d card(s), got %d.", pending.Max, len(indices)), nil
	}
	return answer(ctx, sess, CardsResponse{Indices: indices})
}

func handleAnswerYesNo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := pendingFor(DecisionChooseYesNo)
	if errResult != nil {
		return errResult, nil
	}
	return answer(ctx, sess, YesNoResponse{Answer: request.GetBool("answer", false)})
}

func handleChooseOption(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := pendingFor(DecisionChooseOption)
	if errResult != nil {
		return errResult, nil
	}
	pending := sess.currentPending

	index := request.GetInt("index", -1)
	if index < 0 || index >= len(pending.Options) {
		return mcp.NewToolResultErrorf("Invalid index %d. Must be 0-%d.", index, len(pending.Options)-1), nil
	}
	return answer(ctx, sess, OptionResponse{Index: index})
}

func handleChooseNumber(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := pendingFor(DecisionChooseNumber)
	if errResult != nil {
		return errResult, nil
	}
	pending := sess.currentPending

	value := request.GetInt("value", pending.Min-1)
	if value < pending.Min || value > pending.Max {
		return mcp.NewToolResultErrorf("Value %d out of range. Must be %d-%d.", value, pending.Min, pending.Max), nil
	}
	return answer(ctx, sess, NumberResponse{Value: value})
}

func handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}

	sess := activeSession
	events := sess.drainEvents()

	sess.mu.Lock()
	gameOver := sess.gameOver
	winner := sess.winner
	result := sess.result
	sess.mu.Unlock()

	resp := &ToolResponse{
		MatchID:  sess.ID,
		Events:   events,
		GameOver: gameOver,
		Winner:   winner,
		Result:   result,
	}

	// The last published decision carries the latest state the agent may see.
	if p := sess.currentPending; p != nil {
		resp.State = p.State
		if !gameOver && p.Type != DecisionGameOver {
			resp.Pending = sess.pendingView(p)
		}
	}

	return mcp.NewToolResultText(respondJSON(resp)), nil
}
