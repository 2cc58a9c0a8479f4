package web

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/coder/websocket"

	"github.com/peterkuimelis/colossus/internal/game"
	"github.com/peterkuimelis/colossus/internal/store"
)

//go:embed static
var staticFiles embed.FS

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
	game.CatalogEntry
	ArtPath string `json:"artPath,omitempty"`
}

// MatchStore is the read side of the match history.
type MatchStore interface {
	ListMatches(ctx context.Context, limit int) ([]store.Match, error)
	GetMatch(ctx context.Context, id string) (store.Match, error)
}

// Server is the Colossus web UI server.
type Server struct {
	artDir    string
	decksFile string
	rules     game.Rules
	matches   MatchStore
	mux       *http.ServeMux
}

// NewServer creates a new web server. matches may be nil, in which case the
// match endpoints report the history as unavailable.
func NewServer(artDir, decksFile string, rules game.Rules, matches MatchStore) *Server {
	s := &Server{
		artDir:    artDir,
		decksFile: decksFile,
		rules:     rules,
		matches:   matches,
		mux:       http.NewServeMux(),
	}
	s.setupRoutes()
	return s
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	// Serve index.html at root
	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f.(io.Reader))
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.Handle("GET /art/", http.StripPrefix("/art/", http.FileServer(http.Dir(s.artDir))))

	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/cards/{id}", s.handleCard)
	s.mux.HandleFunc("GET /api/decks", s.handleDecks)
	s.mux.HandleFunc("GET /api/matches", s.handleMatches)
	s.mux.HandleFunc("GET /api/matches/{id}", s.handleMatch)

	// WebSocket proxy
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) cardInfo(e game.CatalogEntry) CardInfo {
	ci := CardInfo{CatalogEntry: e}
	if _, err := os.Stat(filepath.Join(s.artDir, e.ID+".png")); err == nil {
		ci.ArtPath = "/art/" + e.ID + ".png"
	}
	return ci
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	entries := game.Catalog()
	cards := make([]CardInfo, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, s.cardInfo(e))
	}
	writeJSON(w, http.StatusOK, cards)
}

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	c, ok := game.FindCard(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown card")
		return
	}
	writeJSON(w, http.StatusOK, s.cardInfo(game.EntryFor(c)))
}

func (s *Server) handleDecks(w http.ResponseWriter, r *http.Request) {
	df, err := game.LoadDeckFile(s.decksFile)
	if err != nil {
		log.Printf("load decks: %v", err)
		writeError(w, http.StatusInternalServerError, "could not load decks file")
		return
	}
	writeJSON(w, http.StatusOK, deckInfos(df, s.rules))
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	if s.matches == nil {
		writeError(w, http.StatusServiceUnavailable, "match history is not configured")
		return
	}
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	matches, err := s.matches.ListMatches(r.Context(), limit)
	if err != nil {
		log.Printf("list matches: %v", err)
		writeError(w, http.StatusInternalServerError, "could not list matches")
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if s.matches == nil {
		writeError(w, http.StatusServiceUnavailable, "match history is not configured")
		return
	}
	m, err := s.matches.GetMatch(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "match not found")
		return
	}
	if err != nil {
		log.Printf("get match: %v", err)
		writeError(w, http.StatusInternalServerError, "could not load match")
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true, // Allow connections from any origin
	})
	if err != nil {
		log.Printf("WebSocket accept error: %v", err)
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()

	// Read initial connect message from browser
	_, connectData, err := wsConn.Read(ctx)
	if err != nil {
		log.Printf("WebSocket read connect: %v", err)
		return
	}

	var connectMsg struct {
		Type       string `json:"type"`
		Addr       string `json:"addr"`
		DeckNumber int    `json:"deck_number"`
	}
	if err := json.Unmarshal(connectData, &connectMsg); err != nil || connectMsg.Type != "connect" {
		wsConn.Close(websocket.StatusPolicyViolation, "expected connect message")
		return
	}

	// Open TCP connection to game server
	tcpConn, err := net.Dial("tcp", connectMsg.Addr)
	if err != nil {
		errMsg, _ := json.Marshal(map[string]string{
			"type":   "error",
			"result": fmt.Sprintf("Could not connect to game server at %s: %v", connectMsg.Addr, err),
		})
		wsConn.Write(ctx, websocket.MessageText, errMsg)
		wsConn.Close(websocket.StatusNormalClosure, "connection failed")
		return
	}
	defer tcpConn.Close()

	joinMsg, _ := json.Marshal(map[string]any{
		"type":        "join",
		"deck_number": connectMsg.DeckNumber,
	})
	joinMsg = append(joinMsg, '\n')
	if _, err := tcpConn.Write(joinMsg); err != nil {
		log.Printf("TCP write join: %v", err)
		return
	}

	done := make(chan struct{})

	// TCP → WebSocket (server messages to browser)
	go func() {
		defer close(done)
		dec := json.NewDecoder(tcpConn)
		for {
			var msg json.RawMessage
			if err := dec.Decode(&msg); err != nil {
				if err != io.EOF {
					log.Printf("TCP read error: %v", err)
				}
				return
			}
			if err := wsConn.Write(ctx, websocket.MessageText, msg); err != nil {
				log.Printf("WebSocket write error: %v", err)
				return
			}
		}
	}()

	// WebSocket → TCP (browser responses to server)
	go func() {
		for {
			_, data, err := wsConn.Read(ctx)
			if err != nil {
				return
			}
			data = append(data, '\n')
			if _, err := tcpConn.Write(data); err != nil {
				log.Printf("TCP write error: %v", err)
				return
			}
		}
	}()

	<-done
	wsConn.Close(websocket.StatusNormalClosure, "game ended")
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
