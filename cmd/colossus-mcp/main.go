package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/colossus/internal/config"
	"github.com/peterkuimelis/colossus/internal/game"
	colmcp "github.com/peterkuimelis/colossus/internal/mcp"
	"github.com/peterkuimelis/colossus/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	decks := flag.String("decks", cfg.DecksFile, "path to decks YAML file")
	port := flag.String("port", "9999", "TCP port for human player connection")
	db := flag.String("db", "", "SQLite file to record finished matches in (empty to skip)")
	flag.Parse()

	sc := colmcp.SessionConfig{
		DecksFile: *decks,
		Port:      *port,
		Rules:     cfg.Rules,
		Seed:      cfg.Seed,
		MaxTurns:  cfg.MaxTurns,
	}
	if *db != "" {
		st, err := store.Open(*db)
		if err != nil {
			config.Exitf("Error: %v", err)
		}
		defer st.Close()
		sc.OnFinish = func(id string, d *game.Duel, deck0, deck1 string) {
			m := store.MatchFromSnapshot(id, d.Snapshot(), deck0, deck1, cfg.Seed)
			if err := st.SaveMatch(context.Background(), m); err != nil {
				log.Printf("save match %s: %v", id, err)
			}
		}
	}
	colmcp.Configure(sc)

	s := server.NewMCPServer("colossus", "1.0.0")
	colmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		config.Exitf("Error: %v", err)
	}
}
