package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/peterkuimelis/colossus/internal/config"
	"github.com/peterkuimelis/colossus/internal/store"
	"github.com/peterkuimelis/colossus/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	port := flag.Int("port", cfg.HTTPPort, "HTTP port to listen on")
	artDir := flag.String("art", cfg.ArtDir, "path to card art directory")
	decksFile := flag.String("decks", cfg.DecksFile, "path to decks YAML file")
	db := flag.String("db", cfg.DBPath, "SQLite match history (empty to disable)")
	flag.Parse()

	var matches web.MatchStore
	if *db != "" {
		st, err := store.Open(*db)
		if err != nil {
			config.Exitf("Error: %v", err)
		}
		defer st.Close()
		matches = st
	}

	srv := web.NewServer(*artDir, *decksFile, cfg.Rules, matches)

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("colossus web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
