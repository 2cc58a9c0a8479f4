package net

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
)

// slotNames labels the three field slots left to right.
var slotNames = [3]string{"Human/Nonhuman", "Celestial/Location", "Event/Object"}

// Client connects to a game server and provides a terminal REPL.
type Client struct {
	conn       net.Conn
	playerName string // "P1" or "P2"
	in         io.Reader
	out        io.Writer
}

// Connect connects to a server, sends the deck choice, and runs the REPL.
func Connect(ctx context.Context, addr string, deckNumber int) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	// Send join message with deck choice
	enc := json.NewEncoder(conn)
	if err := enc.Encode(ClientMessage{Type: "join", DeckNumber: deckNumber}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}

	fmt.Println("Connected! Waiting for the coin flip...")

	client := &Client{conn: conn, playerName: "P2"}
	return client.RunREPL(ctx)
}

// RunREPL reads server messages and handles them interactively.
func (c *Client) RunREPL(ctx context.Context) error {
	if c.in == nil {
		c.in = os.Stdin
	}
	if c.out == nil {
		c.out = os.Stdout
	}
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)
	reader := bufio.NewReader(c.in)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		var reply *ClientMessage
		switch msg.Type {
		case "notify":
			c.renderEvent(msg.Event)

		case "choose_action":
			c.renderState(msg.State)
			c.renderActions(msg.Actions)
			reply = &ClientMessage{Type: "action", Index: c.readChoice(reader, len(msg.Actions))}

		case "choose_cards":
			c.renderCardChoice(msg.Prompt, msg.Candidates, msg.Min, msg.Max)
			reply = &ClientMessage{Type: "cards", Indices: c.readCardIndices(reader, len(msg.Candidates), msg.Min, msg.Max)}

		case "choose_yes_no":
			fmt.Fprintf(c.out, "\n%s (y/n): ", msg.Prompt)
			reply = &ClientMessage{Type: "yes_no", Answer: c.readYesNo(reader)}

		case "choose_option":
			fmt.Fprintf(c.out, "\n%s\n", msg.Prompt)
			for i, opt := range msg.Options {
				fmt.Fprintf(c.out, "  %d) %s\n", i+1, opt)
			}
			reply = &ClientMessage{Type: "option", Index: c.readChoice(reader, len(msg.Options))}

		case "choose_number":
			fmt.Fprintf(c.out, "\n%s (%d-%d)\n", msg.Prompt, msg.Min, msg.Max)
			reply = &ClientMessage{Type: "number", Index: c.readNumber(reader, msg.Min, msg.Max)}

		case "game_over":
			fmt.Fprintln(c.out)
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			fmt.Fprintln(c.out, "          GAME OVER")
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			fmt.Fprintln(c.out, msg.Result)
			fmt.Fprintln(c.out, "═══════════════════════════════════")
			return nil
		}

		if reply != nil {
			if err := enc.Encode(reply); err != nil {
				return fmt.Errorf("send %s: %w", reply.Type, err)
			}
		}
	}
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	// Format like the TextLogger
	phase := ev.Phase
	for len(phase) < 10 {
		phase += " "
	}
	fmt.Fprintf(c.out, "R%-2d T%-2d %s| %s\n", ev.Round, ev.Turn, phase, ev.Details)
}

func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}
	w := c.out

	fmt.Fprintln(w)
	fmt.Fprintln(w, "╔══════════════════════════════════════════════════════╗")

	opp := sv.Opponent
	fmt.Fprintf(w, "║  OPPONENT  Health: %d  Gold: %d  Hand: %d  Deck: %d  Crypt: %d\n",
		opp.Health, opp.Gold, opp.HandCount, opp.DeckCount, opp.CryptCount)
	fmt.Fprintf(w, "║  %s\n", formatField(opp.Field))

	fmt.Fprintf(w, "║─────────────────────── Bank: %d ───────────────────────\n", sv.Bank)

	you := sv.You
	fmt.Fprintf(w, "║  %s\n", formatField(you.Field))
	fmt.Fprintf(w, "║  YOU  Health: %d  Gold: %d  Moves: %d  Hand: %d  Deck: %d  Crypt: %d\n",
		you.Health, you.Gold, you.Moves, you.HandCount, you.DeckCount, you.CryptCount)
	fmt.Fprintln(w, "╚══════════════════════════════════════════════════════╝")

	turnInfo := fmt.Sprintf("Round %d | Turn %d | %s", sv.Round, sv.Turn, sv.Phase)
	if sv.IsYourTurn {
		turnInfo += " | Your turn"
	} else {
		turnInfo += " | Opponent's turn"
	}
	fmt.Fprintln(w, turnInfo)

	if len(sv.Effects) > 0 {
		fmt.Fprintln(w, "\nActive effects:")
		for _, e := range sv.Effects {
			fmt.Fprintf(w, "  P%d %-28s %s\n", e.Owner+1, e.Name, formatRounds(e.Duration))
		}
	}

	if len(you.Hand) > 0 {
		fmt.Fprintf(w, "\nHand: ")
		for i, cv := range you.Hand {
			fmt.Fprintf(w, "[%d] %s (%dg)  ", i+1, cv.Name, cv.Cost)
		}
		fmt.Fprintln(w)
	}

	if len(sv.Log) > 0 {
		fmt.Fprintln(w, "\nRecent:")
		for _, line := range sv.Log {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
}

func formatField(field [3]*CardView) string {
	parts := make([]string, 0, len(field))
	for i, cv := range field {
		if cv == nil {
			parts = append(parts, fmt.Sprintf("%s: [ ]", slotNames[i]))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: [%s %s]", slotNames[i], cv.Name, formatRounds(cv.Remaining)))
	}
	return strings.Join(parts, "  ")
}

func formatRounds(n int) string {
	if n < 0 {
		return "∞"
	}
	return fmt.Sprintf("%dr", n)
}

func (c *Client) renderActions(actions []ActionView) {
	fmt.Fprintln(c.out, "\nActions:")
	for _, a := range actions {
		fmt.Fprintf(c.out, "  %d) %s\n", a.Index+1, a.Desc)
	}
}

func (c *Client) readChoice(reader *bufio.Reader, count int) int {
	for {
		fmt.Fprint(c.out, "> ")
		line, err := reader.ReadString('\n')
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && n >= 1 && n <= count {
			return n - 1 // convert to 0-indexed
		}
		if err != nil {
			return count - 1
		}
		fmt.Fprintf(c.out, "Enter a number between 1 and %d\n", count)
	}
}

func (c *Client) readNumber(reader *bufio.Reader, min, max int) int {
	for {
		fmt.Fprint(c.out, "> ")
		line, err := reader.ReadString('\n')
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && n >= min && n <= max {
			return n
		}
		if err != nil {
			return max
		}
		fmt.Fprintf(c.out, "Enter a number between %d and %d\n", min, max)
	}
}

func (c *Client) renderCardChoice(prompt string, candidates []CardView, min, max int) {
	fmt.Fprintf(c.out, "\n%s (select %d", prompt, min)
	if max != min {
		fmt.Fprintf(c.out, "-%d", max)
	}
	fmt.Fprintln(c.out, ")")
	for _, cv := range candidates {
		fmt.Fprintf(c.out, "  %d) %s [%s] %dg\n", cv.Index+1, cv.Name, strings.Join(cv.Types, "/"), cv.Cost)
	}
}

func (c *Client) readCardIndices(reader *bufio.Reader, count, min, max int) []int {
	for {
		fmt.Fprint(c.out, "> ")
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)

		if len(parts) >= min && len(parts) <= max {
			var indices []int
			valid := true
			for _, p := range parts {
				n, convErr := strconv.Atoi(p)
				if convErr != nil || n < 1 || n > count {
					fmt.Fprintf(c.out, "Each number must be between 1 and %d\n", count)
					valid = false
					break
				}
				indices = append(indices, n-1) // convert to 0-indexed
			}
			if valid {
				return indices
			}
		} else {
			fmt.Fprintf(c.out, "Enter %d-%d numbers separated by spaces\n", min, max)
		}
		if err != nil {
			return nil
		}
	}
}

func (c *Client) readYesNo(reader *bufio.Reader) bool {
	for {
		line, err := reader.ReadString('\n')
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if err != nil {
			return false
		}
		fmt.Fprint(c.out, "Enter y or n: ")
	}
}
